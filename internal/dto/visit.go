package dto

import (
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type VisitInsert struct {
	StoreId int    `json:"storeId"`
	Note    string `json:"note,omitempty"`
}

type Visit struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	VisitInsert
}

func ConvertEntityVisitToDto(v *entity.Visit) Visit {
	return Visit{
		Id:        v.Id,
		CreatedAt: v.CreatedAt,
		VisitInsert: VisitInsert{
			StoreId: v.StoreId,
			Note:    v.Note,
		},
	}
}

func ConvertEntityVisitsToDto(vs []entity.Visit) []Visit {
	out := make([]Visit, 0, len(vs))
	for i := range vs {
		out = append(out, ConvertEntityVisitToDto(&vs[i]))
	}
	return out
}
