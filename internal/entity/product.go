package entity

import (
	"database/sql"
	"time"
)

// ProductInsert holds the editable fields of a product. Prices are in the
// smallest currency unit.
type ProductInsert struct {
	Name           string         `db:"name" valid:"required"`
	WholesalePrice int64          `db:"wholesale_price" valid:"-"`
	RetailPrice    int64          `db:"retail_price" valid:"-"`
	UnitsPerCase   int            `db:"units_per_case" valid:"-"`
	Available      bool           `db:"available" valid:"-"`
	ImageURL       sql.NullString `db:"image_url" valid:"-"`
}

// Product represents the product table
type Product struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	ProductInsert
}

// IsSellable reports whether the product can be put on an order.
// Rows with missing price or case size are treated as malformed.
func (p *Product) IsSellable() bool {
	return p.Available && p.WholesalePrice > 0 && p.UnitsPerCase > 0
}
