package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ilydev-openproject/salesaice/config"
	httpapi "github.com/ilydev-openproject/salesaice/internal/api/http"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/sales"
	"github.com/ilydev-openproject/salesaice/internal/bucket"
	"github.com/ilydev-openproject/salesaice/internal/cache"
	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/events"
	"github.com/ilydev-openproject/salesaice/internal/mail"
	"github.com/ilydev-openproject/salesaice/internal/metrics"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/ilydev-openproject/salesaice/internal/snapshot"
	"github.com/ilydev-openproject/salesaice/internal/store"
)

// App is the main application
type App struct {
	hs        *httpapi.Server
	db        dependency.Repository
	mailer    *mail.Mailer
	publisher *events.Publisher
	worker    *snapshot.Worker
	c         *config.Config
	done      chan struct{}
	doneOnce  sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting salesaice")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	// optional collaborators stay untyped nil when disabled
	var files dependency.FileStore
	if a.c.Bucket.Enabled() {
		b, err := bucket.New(&a.c.Bucket)
		if err != nil {
			return fmt.Errorf("can't create bucket: %w", err)
		}
		files = b
	} else {
		slog.Default().WarnContext(ctx, "bucket is not configured, image uploads are disabled")
	}

	var mailer dependency.Mailer
	if a.c.Mailer.Enabled() {
		a.mailer, err = mail.New(&a.c.Mailer, a.db.Mail())
		if err != nil {
			return fmt.Errorf("can't create mailer: %w", err)
		}
		if err := a.mailer.Start(ctx); err != nil {
			return fmt.Errorf("can't start mailer: %w", err)
		}
		mailer = a.mailer
	} else {
		slog.Default().WarnContext(ctx, "mailer is not configured, daily digests are disabled")
	}

	a.publisher, err = events.New(&a.c.Events)
	if err != nil {
		return fmt.Errorf("can't create event publisher: %w", err)
	}

	sc := cache.New()
	salesS, err := sales.New(&a.c.Sales, a.db, files, a.publisher, sc)
	if err != nil {
		return fmt.Errorf("can't create sales server: %w", err)
	}

	limiter := ratelimit.NewCustomMultiKeyLimiter(a.c.RateLimit)
	authS, err := auth.New(&a.c.Auth, a.db, limiter)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	m := metrics.New()

	a.worker = snapshot.New(&a.c.Snapshot, salesS, sc, mailer, m, salesS.Location())
	if err := a.worker.Start(ctx); err != nil {
		return fmt.Errorf("can't start snapshot worker: %w", err)
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, salesS, authS, m, limiter); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
	}
	if a.worker != nil {
		if err := a.worker.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop snapshot worker", slog.String("err", err.Error()))
		}
	}
	if a.mailer != nil {
		if err := a.mailer.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop mailer", slog.String("err", err.Error()))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			slog.Default().ErrorContext(ctx, "can't close event publisher", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
