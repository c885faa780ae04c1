package entity

import "time"

type VisitInsert struct {
	StoreId int    `db:"store_id" valid:"required"`
	Note    string `db:"note" valid:"-"`
}

// Visit represents the visit table. A visit without an order is a check-in
// with no sale.
type Visit struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	VisitInsert
}

func (v Visit) Timestamp() time.Time {
	return v.CreatedAt
}
