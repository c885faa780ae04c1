package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := New()

	_, ok := c.GetSnapshot()
	assert.False(t, ok)
	_, ok = c.GetTarget()
	assert.False(t, ok)

	c.SetTarget(entity.MonthlyTarget{BoxGoal: 300})
	tg, ok := c.GetTarget()
	assert.True(t, ok)
	assert.Equal(t, int64(300), tg.BoxGoal)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.SetSnapshot(&entity.Snapshot{MonthKey: "2026-10", ComputedAt: time.Unix(int64(i), 0)})
			c.GetSnapshot()
		}(i)
	}
	wg.Wait()

	s, ok := c.GetSnapshot()
	assert.True(t, ok)
	assert.Equal(t, "2026-10", s.MonthKey)
}
