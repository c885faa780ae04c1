package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls in [From, To).
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && t.Before(tr.To)
}

// Summary contains the aggregated figures for a set of orders and visits.
// Money is in the smallest currency unit.
type Summary struct {
	Revenue        int64
	Boxes          int64
	OrderCount     int
	VisitCount     int
	AvgOrderValue  decimal.Decimal // revenue / orders
	ConversionRate decimal.Decimal // orders / visits * 100
}

// StoreMetric is the per-store row used by the store ranking.
type StoreMetric struct {
	StoreId      int
	StoreName    string
	Revenue      int64
	Boxes        int64
	OrderCount   int
	VisitCount   int
	LastActivity time.Time
	// DaysSinceActivity is nil when the store has no activity at all.
	DaysSinceActivity *int
}

// StoreActivity is the latest order or visit of a store over its whole history.
type StoreActivity struct {
	StoreId      int       `db:"store_id"`
	LastActivity time.Time `db:"last_activity"`
}

// ProductMetric is the per-product row used by the product ranking.
type ProductMetric struct {
	ProductId   int
	ProductName string
	Boxes       int64
	Revenue     int64
	OrderCount  int
	// AvgReorderDays is set only when reorder velocity is known.
	AvgReorderDays *float64
}

// RewardStatus is the reward eligibility of one store for one month.
type RewardStatus struct {
	StoreId   int
	MonthKey  string
	Boxes     int64
	Threshold int64
	Eligible  int64
	Claimed   int64
	Pending   int64
}

// HasPending reports whether rewards are waiting to be claimed.
func (rs RewardStatus) HasPending() bool {
	return rs.Pending > 0
}

// ReorderVelocity is the average gap in days between consecutive orders of a
// product by one store.
type ReorderVelocity struct {
	ProductId   int
	ProductName string
	Orders      int
	GapsDays    []int
	AvgGapDays  float64
}

// TargetProgress compares a summary to the monthly target.
type TargetProgress struct {
	Target          MonthlyTarget
	Boxes           int64
	Revenue         int64
	BoxProgress     decimal.Decimal
	RevenueProgress decimal.Decimal
}

// Dashboard is the landing screen read model.
type Dashboard struct {
	Today         Summary
	Month         Summary
	PreviousMonth Summary
	RevenueChange *float64
	BoxesChange   *float64
	Progress      TargetProgress
}

// ScheduledStore is a store due for a visit on a given day.
type ScheduledStore struct {
	Store   Store
	Visited bool
	Ordered bool
}

// Snapshot is a precomputed monthly ranking.
type Snapshot struct {
	MonthKey   string
	ComputedAt time.Time
	Summary    Summary
	Stores     []StoreMetric
	Products   []ProductMetric
}
