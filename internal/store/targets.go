package store

import (
	"context"
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type targetStore struct {
	*MYSQLStore
}

// Targets returns an object implementing targets interface
func (ms *MYSQLStore) Targets() dependency.Targets {
	return &targetStore{
		MYSQLStore: ms,
	}
}

func (ts *targetStore) GetTarget(ctx context.Context) (*entity.MonthlyTarget, error) {
	t, err := QueryNamedOne[entity.MonthlyTarget](ctx, ts.DB(), `
	SELECT box_goal, revenue_goal, updated_at FROM monthly_target WHERE id = 1`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get monthly target: %w", notFound(err))
	}
	return &t, nil
}

func (ts *targetStore) SaveTarget(ctx context.Context, t *entity.MonthlyTarget) error {
	_, err := ExecNamed(ctx, ts.DB(), `
	INSERT INTO monthly_target (id, box_goal, revenue_goal) VALUES (1, :boxGoal, :revenueGoal)
	ON DUPLICATE KEY UPDATE box_goal = :boxGoal, revenue_goal = :revenueGoal`, map[string]any{
		"boxGoal":     t.BoxGoal,
		"revenueGoal": t.RevenueGoal,
	})
	if err != nil {
		return fmt.Errorf("can't save monthly target: %w", err)
	}
	return nil
}
