package cache

import (
	"sync"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

// Cache keeps the latest monthly snapshot and the monthly target in process
// memory. It is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	snapshot *entity.Snapshot
	target   *entity.MonthlyTarget
}

func New() *Cache {
	return &Cache{}
}

func (c *Cache) GetSnapshot() (*entity.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.snapshot != nil
}

func (c *Cache) SetSnapshot(s *entity.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = s
}

func (c *Cache) GetTarget() (entity.MonthlyTarget, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.target == nil {
		return entity.MonthlyTarget{}, false
	}
	return *c.target, true
}

func (c *Cache) SetTarget(t entity.MonthlyTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = &t
}
