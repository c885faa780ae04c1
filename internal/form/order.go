package form

import (
	"fmt"
	"math"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilydev-openproject/salesaice/internal/dto"
)

const (
	maxOrderItems    = 100
	maxItemQuantity  = 10000
	maxVisitNoteSize = 1000
)

type OrderRequest struct {
	*dto.OrderNew
}

func (r *OrderRequest) Validate() error {
	if r == nil || r.OrderNew == nil {
		return errNilRequest
	}
	return ValidateStruct(r.OrderNew,
		v.Field(&r.StoreId, v.Required, v.Min(1)),
		v.Field(&r.VisitId, v.Min(1), v.Max(math.MaxInt32)),
		v.Field(&r.Note, v.Length(0, maxVisitNoteSize)),
		v.Field(&r.Items, v.Required, v.Length(1, maxOrderItems), v.Each(v.By(validateOrderItem))),
	)
}

func validateOrderItem(value interface{}) error {
	it, ok := value.(dto.OrderItemInsert)
	if !ok {
		return fmt.Errorf("invalid type for order item")
	}
	return v.ValidateStruct(&it,
		v.Field(&it.ProductId, v.Required, v.Min(1)),
		v.Field(&it.Quantity, v.Required, v.Min(1), v.Max(maxItemQuantity)),
	)
}

type VisitRequest struct {
	*dto.VisitInsert
}

func (r *VisitRequest) Validate() error {
	if r == nil || r.VisitInsert == nil {
		return errNilRequest
	}
	return ValidateStruct(r.VisitInsert,
		v.Field(&r.StoreId, v.Required, v.Min(1)),
		v.Field(&r.Note, v.Length(0, maxVisitNoteSize)),
	)
}
