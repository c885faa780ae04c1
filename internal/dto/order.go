package dto

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type OrderItemInsert struct {
	ProductId int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// OrderNew is the request body for creating an order. Prices are not
// accepted from the client.
type OrderNew struct {
	StoreId int               `json:"storeId"`
	VisitId *int              `json:"visitId,omitempty"`
	Note    string            `json:"note,omitempty"`
	Items   []OrderItemInsert `json:"items"`
}

type OrderItem struct {
	ProductId   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Total       int64  `json:"total"`
}

type Order struct {
	Id        int         `json:"id"`
	UUID      string      `json:"uuid"`
	StoreId   int         `json:"storeId"`
	VisitId   *int        `json:"visitId,omitempty"`
	Note      string      `json:"note,omitempty"`
	Total     int64       `json:"total"`
	Boxes     int64       `json:"boxes"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

// ConvertOrderNewToEntity converts the request body, merging repeated
// products into one line.
func ConvertOrderNewToEntity(o *OrderNew) (*entity.OrderNew, error) {
	if o == nil {
		return nil, fmt.Errorf("order is nil")
	}
	on := &entity.OrderNew{
		StoreId: o.StoreId,
		Note:    strings.TrimSpace(o.Note),
	}
	if o.VisitId != nil {
		on.VisitId = sql.NullInt32{Int32: int32(*o.VisitId), Valid: true}
	}
	idx := map[int]int{}
	for _, it := range o.Items {
		if i, ok := idx[it.ProductId]; ok {
			on.Items[i].Quantity += it.Quantity
			continue
		}
		idx[it.ProductId] = len(on.Items)
		on.Items = append(on.Items, entity.OrderItemInsert{
			ProductId: it.ProductId,
			Quantity:  it.Quantity,
		})
	}
	return on, nil
}

func ConvertEntityOrderToDto(o *entity.OrderFull) Order {
	out := Order{
		Id:        o.Id,
		UUID:      o.UUID,
		StoreId:   o.StoreId,
		Note:      o.Note,
		Total:     o.Total,
		Boxes:     o.Boxes(),
		CreatedAt: o.CreatedAt,
		Items:     make([]OrderItem, 0, len(o.Items)),
	}
	if o.VisitId.Valid {
		v := int(o.VisitId.Int32)
		out.VisitId = &v
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       it.Total,
		})
	}
	return out
}

func ConvertEntityOrdersToDto(ofs []entity.OrderFull) []Order {
	out := make([]Order, 0, len(ofs))
	for i := range ofs {
		out = append(out, ConvertEntityOrderToDto(&ofs[i]))
	}
	return out
}
