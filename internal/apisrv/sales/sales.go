// Package sales implements the field sales API: stores, products, visits,
// orders, rewards, targets and the reporting read models.
package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/report"
	"golang.org/x/text/language"
)

const (
	defaultTimezone     = "Asia/Jakarta"
	defaultLookbackDays = 180
)

type Config struct {
	Timezone        string `mapstructure:"timezone"`
	Language        string `mapstructure:"language"`
	RewardThreshold int64  `mapstructure:"reward_threshold"`
	// VelocityLookbackDays is how far back orders are read for reorder velocity.
	VelocityLookbackDays int `mapstructure:"velocity_lookback_days"`
}

// Server implements handlers for the sales app.
type Server struct {
	repo      dependency.Repository
	bucket    dependency.FileStore
	publisher dependency.Publisher
	cache     dependency.SnapshotCache
	ranker    *report.Ranker
	loc       *time.Location
	threshold int64
	lookback  int
	now       func() time.Time
}

// New creates a new server with sales handlers. The file store and the
// publisher may be nil.
func New(
	c *Config,
	r dependency.Repository,
	b dependency.FileStore,
	p dependency.Publisher,
	sc dependency.SnapshotCache,
) (*Server, error) {
	tz := c.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("can't load timezone %q: %w", tz, err)
	}

	lang := language.Indonesian
	if c.Language != "" {
		lang, err = language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", c.Language, err)
		}
	}

	threshold := c.RewardThreshold
	if threshold <= 0 {
		threshold = report.DefaultRewardThreshold
	}
	lookback := c.VelocityLookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}

	return &Server{
		repo:      r,
		bucket:    b,
		publisher: p,
		cache:     sc,
		ranker:    report.NewRanker(lang),
		loc:       loc,
		threshold: threshold,
		lookback:  lookback,
		now:       time.Now,
	}, nil
}

// Location returns the business timezone used for day and month boundaries.
func (s *Server) Location() *time.Location {
	return s.loc
}

func (s *Server) publish(ctx context.Context, routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		slog.Default().ErrorContext(ctx, "can't publish event",
			slog.String("event", routingKey),
			slog.String("err", err.Error()),
		)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// internalErr logs err and hides it behind an Internal status.
func internalErr(ctx context.Context, msg string, err error) error {
	slog.Default().ErrorContext(ctx, msg,
		slog.String("err", err.Error()),
	)
	return gerr.Internal("%s", msg)
}
