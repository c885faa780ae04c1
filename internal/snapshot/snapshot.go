// Package snapshot runs the background worker that keeps the month ranking
// warm in the cache and queues the daily digest email.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
)

// Config holds configuration for the snapshot worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 5 * time.Minute,
	}
}

// Observer receives worker outcomes, typically the Prometheus collectors.
type Observer interface {
	SnapshotComputed(at time.Time)
	SnapshotFailed()
	DigestQueued()
}

type nopObserver struct{}

func (nopObserver) SnapshotComputed(time.Time) {}
func (nopObserver) SnapshotFailed()            {}
func (nopObserver) DigestQueued()              {}

type Worker struct {
	c        *Config
	reporter dependency.Reporter
	cache    dependency.SnapshotCache
	mailer   dependency.Mailer
	obs      Observer
	loc      *time.Location
	now      func() time.Time
	ctx      context.Context
	stop     context.CancelFunc
}

// New creates a new snapshot worker. The mailer and the observer may be nil.
func New(c *Config, r dependency.Reporter, sc dependency.SnapshotCache, m dependency.Mailer, obs Observer, loc *time.Location) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = DefaultConfig().WorkerInterval
	}
	if obs == nil {
		obs = nopObserver{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Worker{
		c:        c,
		reporter: r,
		cache:    sc,
		mailer:   m,
		obs:      obs,
		loc:      loc,
		now:      time.Now,
	}
}

// Start computes the first snapshot in the background and then repeats it
// every interval.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("snapshot worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("snapshot worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	w.ctx = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if err := w.refresh(ctx); err != nil {
		w.obs.SnapshotFailed()
		slog.Default().ErrorContext(ctx, "can't refresh month snapshot",
			slog.String("err", err.Error()),
		)
	}
	if err := w.queueDigest(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't queue daily digest",
			slog.String("err", err.Error()),
		)
	}
}

func (w *Worker) refresh(ctx context.Context) error {
	snap, err := w.reporter.MonthSnapshot(ctx)
	if err != nil {
		return err
	}
	w.cache.SetSnapshot(snap)
	w.obs.SnapshotComputed(snap.ComputedAt)
	slog.Default().DebugContext(ctx, "month snapshot refreshed",
		slog.String("month", snap.MonthKey),
		slog.Int("stores", len(snap.Stores)),
	)
	return nil
}

// queueDigest hands today's dashboard to the mailer once the digest hour has
// passed. The mailer drops repeats for the same day.
func (w *Worker) queueDigest(ctx context.Context) error {
	if w.mailer == nil {
		return nil
	}
	now := w.now().In(w.loc)
	if !w.mailer.DigestDue(now) {
		return nil
	}
	d, err := w.reporter.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("can't build dashboard: %w", err)
	}
	if err := w.mailer.QueueDigest(ctx, now.Format(time.DateOnly), d); err != nil {
		return err
	}
	w.obs.DigestQueued()
	return nil
}
