package store

import (
	"context"
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing product interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func productParams(p *entity.ProductInsert) map[string]any {
	return map[string]any{
		"name":           p.Name,
		"wholesalePrice": p.WholesalePrice,
		"retailPrice":    p.RetailPrice,
		"unitsPerCase":   p.UnitsPerCase,
		"available":      p.Available,
		"imageUrl":       p.ImageURL,
	}
}

func (ps *productStore) AddProduct(ctx context.Context, p *entity.ProductInsert) (int, error) {
	query := `
	INSERT INTO product (name, wholesale_price, retail_price, units_per_case, available, image_url)
	VALUES (:name, :wholesalePrice, :retailPrice, :unitsPerCase, :available, :imageUrl)`

	id, err := ExecNamedLastId(ctx, ps.DB(), query, productParams(p))
	if err != nil {
		return 0, fmt.Errorf("can't insert product: %w", err)
	}
	return id, nil
}

func (ps *productStore) UpdateProduct(ctx context.Context, id int, p *entity.ProductInsert) error {
	query := `
	UPDATE product SET
		name = :name,
		wholesale_price = :wholesalePrice,
		retail_price = :retailPrice,
		units_per_case = :unitsPerCase,
		available = :available,
		image_url = :imageUrl
	WHERE id = :id`

	params := productParams(p)
	params["id"] = id
	if _, err := ExecNamed(ctx, ps.DB(), query, params); err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}
	return nil
}

func (ps *productStore) DeleteProductById(ctx context.Context, id int) error {
	ra, err := ExecNamed(ctx, ps.DB(), `DELETE FROM product WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete product: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("can't delete product %d: %w", id, ErrNotFound)
	}
	return nil
}

func (ps *productStore) GetProductById(ctx context.Context, id int) (*entity.Product, error) {
	p, err := QueryNamedOne[entity.Product](ctx, ps.DB(), `SELECT * FROM product WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get product by id: %w", notFound(err))
	}
	return &p, nil
}

func (ps *productStore) GetProductsByIds(ctx context.Context, ids []int) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	prds, err := QueryListNamed[entity.Product](ctx, ps.DB(), `SELECT * FROM product WHERE id IN (:ids)`, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get products by ids: %w", err)
	}
	return prds, nil
}

func (ps *productStore) ListProducts(ctx context.Context) ([]entity.Product, error) {
	prds, err := QueryListNamed[entity.Product](ctx, ps.DB(), `SELECT * FROM product ORDER BY name, id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	return prds, nil
}

func (ps *productStore) SetProductAvailability(ctx context.Context, id int, available bool) error {
	ra, err := ExecNamed(ctx, ps.DB(), `UPDATE product SET available = :available WHERE id = :id`, map[string]any{
		"id":        id,
		"available": available,
	})
	if err != nil {
		return fmt.Errorf("can't set product availability: %w", err)
	}
	if ra == 0 {
		// MySQL reports 0 affected rows when the value didn't change
		if _, err := ps.GetProductById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (ps *productStore) SetProductImage(ctx context.Context, id int, url string) error {
	_, err := ExecNamed(ctx, ps.DB(), `UPDATE product SET image_url = :url WHERE id = :id`, map[string]any{
		"id":  id,
		"url": url,
	})
	if err != nil {
		return fmt.Errorf("can't set product image: %w", err)
	}
	return nil
}
