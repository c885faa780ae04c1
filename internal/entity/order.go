package entity

import (
	"database/sql"
	"time"
)

// OrderNew is the input for creating an order. Prices are resolved from the
// product catalog at creation time.
type OrderNew struct {
	StoreId int               `valid:"required"`
	VisitId sql.NullInt32     `valid:"-"`
	Note    string            `valid:"-"`
	Items   []OrderItemInsert `valid:"required"`
}

// Order represents the orders table
type Order struct {
	Id        int           `db:"id"`
	UUID      string        `db:"uuid"`
	StoreId   int           `db:"store_id"`
	VisitId   sql.NullInt32 `db:"visit_id"`
	Note      string        `db:"note"`
	Total     int64         `db:"total"`
	CreatedAt time.Time     `db:"created_at"`
}

// OrderFull is an order with its line items.
type OrderFull struct {
	Order
	Items []OrderItem
}

func (o OrderFull) Timestamp() time.Time {
	return o.CreatedAt
}

// Boxes returns the number of cases over all line items.
func (o *OrderFull) Boxes() int64 {
	var n int64
	for _, it := range o.Items {
		n += int64(it.Quantity)
	}
	return n
}

// ItemsTotal returns the sum of line totals.
func (o *OrderFull) ItemsTotal() int64 {
	var n int64
	for _, it := range o.Items {
		n += it.Total
	}
	return n
}

type OrderItemInsert struct {
	ProductId int `db:"product_id" valid:"required"`
	Quantity  int `db:"quantity" valid:"required"`
}

// OrderItem represents the order_item table. Name and price are captured at
// order time.
type OrderItem struct {
	Id          int    `db:"id"`
	OrderId     int    `db:"order_id"`
	ProductName string `db:"product_name"`
	Price       int64  `db:"price"`
	Total       int64  `db:"total"`
	OrderItemInsert
}
