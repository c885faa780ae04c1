package store

import (
	"context"
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type rewardStore struct {
	*MYSQLStore
}

// Rewards returns an object implementing the reward ledger interface
func (ms *MYSQLStore) Rewards() dependency.Rewards {
	return &rewardStore{
		MYSQLStore: ms,
	}
}

func (rs *rewardStore) AddRewardClaim(ctx context.Context, c *entity.RewardClaim) (int, error) {
	id, err := ExecNamedLastId(ctx, rs.DB(), `
	INSERT INTO reward_claim (store_id, month_key, units, kind, reverts_id, created_at)
	VALUES (:storeId, :monthKey, :units, :kind, :revertsId, :createdAt)`, map[string]any{
		"storeId":   c.StoreId,
		"monthKey":  c.MonthKey,
		"units":     c.Units,
		"kind":      c.Kind,
		"revertsId": c.RevertsId,
		"createdAt": rs.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't add reward claim: %w", err)
	}
	return id, nil
}

// ListRewardClaims returns the ledger of one store and month in insertion order.
// The rows are locked when called inside a transaction.
func (rs *rewardStore) ListRewardClaims(ctx context.Context, storeId int, monthKey string) ([]entity.RewardClaim, error) {
	query := `
	SELECT * FROM reward_claim
	WHERE store_id = :storeId AND month_key = :monthKey
	ORDER BY id`
	if rs.InTx() {
		query += ` FOR UPDATE`
	}
	claims, err := QueryListNamed[entity.RewardClaim](ctx, rs.DB(), query, map[string]any{
		"storeId":  storeId,
		"monthKey": monthKey,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list reward claims: %w", err)
	}
	return claims, nil
}
