package entity

import (
	"database/sql"
	"time"
)

type RewardClaimKind string

const (
	RewardClaimed RewardClaimKind = "claim"
	RewardUndone  RewardClaimKind = "undo"
)

// RewardClaim is an append-only ledger entry. An undo entry points at the
// claim it reverts.
type RewardClaim struct {
	Id        int             `db:"id"`
	StoreId   int             `db:"store_id"`
	MonthKey  string          `db:"month_key"`
	Units     int             `db:"units"`
	Kind      RewardClaimKind `db:"kind"`
	RevertsId sql.NullInt32   `db:"reverts_id"`
	CreatedAt time.Time       `db:"created_at"`
}
