package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type ProductInsert struct {
	Name           string `json:"name"`
	WholesalePrice int64  `json:"wholesalePrice"`
	RetailPrice    int64  `json:"retailPrice"`
	UnitsPerCase   int    `json:"unitsPerCase"`
	Available      bool   `json:"available"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

type Product struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ProductInsert
}

func ConvertProductInsertToEntity(p *ProductInsert) (*entity.ProductInsert, error) {
	if p == nil {
		return nil, fmt.Errorf("product is nil")
	}
	return &entity.ProductInsert{
		Name:           strings.TrimSpace(p.Name),
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		UnitsPerCase:   p.UnitsPerCase,
		Available:      p.Available,
		ImageURL:       nullString(p.ImageURL),
	}, nil
}

func ConvertEntityProductToDto(p *entity.Product) Product {
	return Product{
		Id:        p.Id,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ProductInsert: ProductInsert{
			Name:           p.Name,
			WholesalePrice: p.WholesalePrice,
			RetailPrice:    p.RetailPrice,
			UnitsPerCase:   p.UnitsPerCase,
			Available:      p.Available,
			ImageURL:       p.ImageURL.String,
		},
	}
}

func ConvertEntityProductsToDto(ps []entity.Product) []Product {
	out := make([]Product, 0, len(ps))
	for i := range ps {
		out = append(out, ConvertEntityProductToDto(&ps[i]))
	}
	return out
}

type SetProductAvailabilityRequest struct {
	Available bool `json:"available"`
}

type UploadProductImageRequest struct {
	RawB64Image string `json:"rawB64Image"`
}
