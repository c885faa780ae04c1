package store

import (
	"context"
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type outletStore struct {
	*MYSQLStore
}

// Stores returns an object implementing stores interface
func (ms *MYSQLStore) Stores() dependency.Stores {
	return &outletStore{
		MYSQLStore: ms,
	}
}

func storeParams(s *entity.StoreInsert) map[string]any {
	return map[string]any{
		"name":        s.Name,
		"code":        s.Code,
		"freezerCode": s.FreezerCode,
		"phone":       s.Phone,
		"latitude":    s.Latitude,
		"longitude":   s.Longitude,
		"visitDays":   s.VisitDays,
	}
}

func (ss *outletStore) AddStore(ctx context.Context, s *entity.StoreInsert) (int, error) {
	query := `
	INSERT INTO store (name, code, freezer_code, phone, latitude, longitude, visit_days)
	VALUES (:name, :code, :freezerCode, :phone, :latitude, :longitude, :visitDays)`

	id, err := ExecNamedLastId(ctx, ss.DB(), query, storeParams(s))
	if err != nil {
		return 0, fmt.Errorf("can't insert store: %w", err)
	}
	return id, nil
}

func (ss *outletStore) UpdateStore(ctx context.Context, id int, s *entity.StoreInsert) error {
	query := `
	UPDATE store SET
		name = :name,
		code = :code,
		freezer_code = :freezerCode,
		phone = :phone,
		latitude = :latitude,
		longitude = :longitude,
		visit_days = :visitDays
	WHERE id = :id`

	params := storeParams(s)
	params["id"] = id
	if _, err := ExecNamed(ctx, ss.DB(), query, params); err != nil {
		return fmt.Errorf("can't update store: %w", err)
	}
	return nil
}

func (ss *outletStore) DeleteStoreById(ctx context.Context, id int) error {
	ra, err := ExecNamed(ctx, ss.DB(), `DELETE FROM store WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete store: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("can't delete store %d: %w", id, ErrNotFound)
	}
	return nil
}

func (ss *outletStore) GetStoreById(ctx context.Context, id int) (*entity.Store, error) {
	s, err := QueryNamedOne[entity.Store](ctx, ss.DB(), `SELECT * FROM store WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get store by id: %w", notFound(err))
	}
	return &s, nil
}

func (ss *outletStore) ListStores(ctx context.Context) ([]entity.Store, error) {
	stores, err := QueryListNamed[entity.Store](ctx, ss.DB(), `SELECT * FROM store ORDER BY id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list stores: %w", err)
	}
	return stores, nil
}

func (ss *outletStore) ListLastActivity(ctx context.Context) ([]entity.StoreActivity, error) {
	query := `
	SELECT store_id, MAX(ts) AS last_activity FROM (
		SELECT store_id, created_at AS ts FROM orders
		UNION ALL
		SELECT store_id, created_at AS ts FROM visit
	) a
	GROUP BY store_id`
	acts, err := QueryListNamed[entity.StoreActivity](ctx, ss.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list last store activity: %w", err)
	}
	return acts, nil
}
