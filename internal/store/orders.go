package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

var orderItemColumns = []string{"order_id", "product_id", "product_name", "price", "quantity", "total"}

func (s *orderStore) CreateOrder(ctx context.Context, o *entity.OrderFull) (*entity.OrderFull, error) {
	created := *o
	created.Items = make([]entity.OrderItem, len(o.Items))
	copy(created.Items, o.Items)

	err := s.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if created.UUID == "" {
			created.UUID = uuid.New().String()
		}
		created.CreatedAt = rep.Now()

		id, err := ExecNamedLastId(ctx, rep.DB(), `
		INSERT INTO orders (uuid, store_id, visit_id, note, total, created_at)
		VALUES (:uuid, :storeId, :visitId, :note, :total, :createdAt)`, map[string]any{
			"uuid":      created.UUID,
			"storeId":   created.StoreId,
			"visitId":   created.VisitId,
			"note":      created.Note,
			"total":     created.Total,
			"createdAt": created.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}
		created.Id = id

		rows := make([]map[string]any, 0, len(created.Items))
		for i := range created.Items {
			created.Items[i].OrderId = id
			it := created.Items[i]
			rows = append(rows, map[string]any{
				"order_id":     id,
				"product_id":   it.ProductId,
				"product_name": it.ProductName,
				"price":        it.Price,
				"quantity":     it.Quantity,
				"total":        it.Total,
			})
		}
		if err := BulkInsert(ctx, rep.DB(), "order_item", orderItemColumns, rows); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *orderStore) DeleteOrderById(ctx context.Context, id int) error {
	ra, err := ExecNamed(ctx, s.DB(), `DELETE FROM orders WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete order: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("can't delete order %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *orderStore) GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error) {
	return s.getOrder(ctx, `SELECT * FROM orders WHERE id = :v`, id)
}

func (s *orderStore) GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.OrderFull, error) {
	return s.getOrder(ctx, `SELECT * FROM orders WHERE uuid = :v`, orderUUID)
}

func (s *orderStore) getOrder(ctx context.Context, query string, v any) (*entity.OrderFull, error) {
	o, err := QueryNamedOne[entity.Order](ctx, s.DB(), query, map[string]any{
		"v": v,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order: %w", notFound(err))
	}
	full, err := s.withItems(ctx, []entity.Order{o})
	if err != nil {
		return nil, err
	}
	return &full[0], nil
}

func (s *orderStore) ListOrdersByRange(ctx context.Context, from, to time.Time) ([]entity.OrderFull, error) {
	orders, err := QueryListNamed[entity.Order](ctx, s.DB(), `
	SELECT * FROM orders
	WHERE created_at >= :from AND created_at < :to
	ORDER BY created_at, id`, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list orders by range: %w", err)
	}
	return s.withItems(ctx, orders)
}

func (s *orderStore) ListOrdersByStore(ctx context.Context, storeId int, from, to time.Time) ([]entity.OrderFull, error) {
	orders, err := QueryListNamed[entity.Order](ctx, s.DB(), `
	SELECT * FROM orders
	WHERE store_id = :storeId AND created_at >= :from AND created_at < :to
	ORDER BY created_at, id`, map[string]any{
		"storeId": storeId,
		"from":    from,
		"to":      to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list orders by store: %w", err)
	}
	return s.withItems(ctx, orders)
}

// withItems loads line items for all orders in one query.
func (s *orderStore) withItems(ctx context.Context, orders []entity.Order) ([]entity.OrderFull, error) {
	full := make([]entity.OrderFull, 0, len(orders))
	if len(orders) == 0 {
		return full, nil
	}
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.Id)
	}
	items, err := QueryListNamed[entity.OrderItem](ctx, s.DB(), `
	SELECT * FROM order_item WHERE order_id IN (:ids) ORDER BY id`, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	byOrder := make(map[int][]entity.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderId] = append(byOrder[it.OrderId], it)
	}
	for _, o := range orders {
		full = append(full, entity.OrderFull{
			Order: o,
			Items: byOrder[o.Id],
		})
	}
	return full, nil
}
