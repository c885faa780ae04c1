package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/cache"
	"github.com/ilydev-openproject/salesaice/internal/dependency/mocks"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	computed int
	failed   int
	digests  int
}

func (o *countingObserver) SnapshotComputed(time.Time) { o.computed++ }
func (o *countingObserver) SnapshotFailed()            { o.failed++ }
func (o *countingObserver) DigestQueued()              { o.digests++ }

func TestTickRefreshesCache(t *testing.T) {
	ctx := context.Background()
	rep := mocks.NewReporter(t)
	c := cache.New()
	obs := &countingObserver{}

	rep.On("MonthSnapshot", mock.Anything).Return(&entity.Snapshot{MonthKey: "2024-05"}, nil).Once()

	w := New(nil, rep, c, nil, obs, time.UTC)
	w.tick(ctx)

	snap, ok := c.GetSnapshot()
	require.True(t, ok)
	assert.Equal(t, "2024-05", snap.MonthKey)
	assert.Equal(t, 1, obs.computed)
	assert.Equal(t, 0, obs.failed)
}

func TestTickFailureKeepsOldSnapshot(t *testing.T) {
	ctx := context.Background()
	rep := mocks.NewReporter(t)
	c := cache.New()
	c.SetSnapshot(&entity.Snapshot{MonthKey: "2024-04"})
	obs := &countingObserver{}

	rep.On("MonthSnapshot", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := New(nil, rep, c, nil, obs, time.UTC)
	w.tick(ctx)

	snap, _ := c.GetSnapshot()
	assert.Equal(t, "2024-04", snap.MonthKey)
	assert.Equal(t, 1, obs.failed)
}

func TestQueueDigest(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 5, 15, 21, 0, 0, 0, loc)
	d := &entity.Dashboard{}

	t.Run("due", func(t *testing.T) {
		rep := mocks.NewReporter(t)
		mailer := mocks.NewMailer(t)
		obs := &countingObserver{}

		mailer.On("DigestDue", now).Return(true).Once()
		rep.On("Dashboard", mock.Anything).Return(d, nil).Once()
		mailer.On("QueueDigest", mock.Anything, "2024-05-15", d).Return(nil).Once()

		w := New(nil, rep, cache.New(), mailer, obs, loc)
		w.now = func() time.Time { return now }
		require.NoError(t, w.queueDigest(ctx))
		assert.Equal(t, 1, obs.digests)
	})

	t.Run("not due", func(t *testing.T) {
		rep := mocks.NewReporter(t)
		mailer := mocks.NewMailer(t)

		mailer.On("DigestDue", now).Return(false).Once()

		w := New(nil, rep, cache.New(), mailer, nil, loc)
		w.now = func() time.Time { return now }
		require.NoError(t, w.queueDigest(ctx))
	})

	t.Run("no mailer", func(t *testing.T) {
		w := New(nil, mocks.NewReporter(t), cache.New(), nil, nil, loc)
		require.NoError(t, w.queueDigest(ctx))
	})
}

func TestStartStop(t *testing.T) {
	rep := mocks.NewReporter(t)
	rep.On("MonthSnapshot", mock.Anything).Return(&entity.Snapshot{MonthKey: "2024-05"}, nil).Maybe()

	w := New(&Config{WorkerInterval: time.Hour}, rep, cache.New(), nil, nil, time.UTC)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}
