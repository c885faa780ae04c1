package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type visitStore struct {
	*MYSQLStore
}

// Visits returns an object implementing visits interface
func (ms *MYSQLStore) Visits() dependency.Visits {
	return &visitStore{
		MYSQLStore: ms,
	}
}

func (vs *visitStore) AddVisit(ctx context.Context, v *entity.VisitInsert) (*entity.Visit, error) {
	createdAt := vs.Now()
	id, err := ExecNamedLastId(ctx, vs.DB(), `
	INSERT INTO visit (store_id, note, created_at)
	VALUES (:storeId, :note, :createdAt)`, map[string]any{
		"storeId":   v.StoreId,
		"note":      v.Note,
		"createdAt": createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't insert visit: %w", err)
	}
	return &entity.Visit{
		Id:          id,
		CreatedAt:   createdAt,
		VisitInsert: *v,
	}, nil
}

func (vs *visitStore) DeleteVisitById(ctx context.Context, id int) error {
	ra, err := ExecNamed(ctx, vs.DB(), `DELETE FROM visit WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete visit: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("can't delete visit %d: %w", id, ErrNotFound)
	}
	return nil
}

func (vs *visitStore) GetVisitById(ctx context.Context, id int) (*entity.Visit, error) {
	v, err := QueryNamedOne[entity.Visit](ctx, vs.DB(), `SELECT * FROM visit WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get visit by id: %w", notFound(err))
	}
	return &v, nil
}

func (vs *visitStore) ListVisitsByRange(ctx context.Context, from, to time.Time) ([]entity.Visit, error) {
	visits, err := QueryListNamed[entity.Visit](ctx, vs.DB(), `
	SELECT * FROM visit
	WHERE created_at >= :from AND created_at < :to
	ORDER BY created_at, id`, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list visits by range: %w", err)
	}
	return visits, nil
}

func (vs *visitStore) ListVisitsByStore(ctx context.Context, storeId int) ([]entity.Visit, error) {
	visits, err := QueryListNamed[entity.Visit](ctx, vs.DB(), `
	SELECT * FROM visit WHERE store_id = :storeId
	ORDER BY created_at DESC, id DESC`, map[string]any{
		"storeId": storeId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list visits by store: %w", err)
	}
	return visits, nil
}
