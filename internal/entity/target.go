package entity

import "time"

// MonthlyTarget is the box and revenue goal for the current operating period.
type MonthlyTarget struct {
	BoxGoal     int64     `db:"box_goal"`
	RevenueGoal int64     `db:"revenue_goal"`
	UpdatedAt   time.Time `db:"updated_at"`
}
