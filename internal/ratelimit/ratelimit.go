package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory sliding window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, c := range l.counters {
			if now.After(c.expiresAt) {
				delete(l.counters, key)
			}
		}
		l.mu.Unlock()
	}
}

// MultiKeyLimiter manages the limiters guarding login and store import.
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
	mu       sync.RWMutex
}

// Config holds per-window limits. Zero values fall back to defaults.
type Config struct {
	LoginPerIP       int `mapstructure:"login_per_ip"`
	LoginPerUsername int `mapstructure:"login_per_username"`
	ImportPerIP      int `mapstructure:"import_per_ip"`
}

// NewMultiKeyLimiter creates a new multi-key limiter with default limits
func NewMultiKeyLimiter() *MultiKeyLimiter {
	return NewCustomMultiKeyLimiter(Config{})
}

// NewCustomMultiKeyLimiter creates a limiter with custom limits
func NewCustomMultiKeyLimiter(c Config) *MultiKeyLimiter {
	if c.LoginPerIP <= 0 {
		c.LoginPerIP = 30
	}
	if c.LoginPerUsername <= 0 {
		c.LoginPerUsername = 10
	}
	if c.ImportPerIP <= 0 {
		c.ImportPerIP = 5
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			"ip_login":   NewLimiter(15*time.Minute, c.LoginPerIP),
			"user_login": NewLimiter(15*time.Minute, c.LoginPerUsername),
			"ip_import":  NewLimiter(time.Minute, c.ImportPerIP),
		},
	}
}

// CheckLogin verifies if a login attempt is allowed from the given IP for the username
func (m *MultiKeyLimiter) CheckLogin(ip, username string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ip != "" && !m.limiters["ip_login"].Allow(ip) {
		return fmt.Errorf("too many login attempts from this IP address, please try again later")
	}

	if username != "" && !m.limiters["user_login"].Allow(username) {
		return fmt.Errorf("too many login attempts for this user, please try again later")
	}

	return nil
}

// CheckImport verifies if a store import is allowed from the given IP
func (m *MultiKeyLimiter) CheckImport(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["ip_import"].Allow(ip) {
		return fmt.Errorf("too many imports, please slow down")
	}

	return nil
}

// GetLoginLimits returns remaining login attempts for IP and username
func (m *MultiKeyLimiter) GetLoginLimits(ip, username string) (ipRemaining, userRemaining int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ipRemaining = m.limiters["ip_login"].GetRemaining(ip)
	if username != "" {
		userRemaining = m.limiters["user_login"].GetRemaining(username)
	} else {
		userRemaining = -1 // not applicable
	}

	return ipRemaining, userRemaining
}
