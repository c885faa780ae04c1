package store

import (
	"context"
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
)

type repStore struct {
	*MYSQLStore
}

// Reps returns an object implementing dependency.Reps interface
func (ms *MYSQLStore) Reps() dependency.Reps {
	return &repStore{
		MYSQLStore: ms,
	}
}

// AddRep creates a new sales rep login
func (rs *repStore) AddRep(ctx context.Context, un, pwHash string) error {
	_, err := rs.DB().ExecContext(ctx, `
	INSERT INTO rep
	(username, password_hash)
	VALUES
	(?, ?)`, un, pwHash)
	if err != nil {
		return fmt.Errorf("can't add rep: %w", err)
	}
	return nil
}

// DeleteRep deletes a rep login
func (rs *repStore) DeleteRep(ctx context.Context, username string) error {
	res, err := rs.DB().ExecContext(ctx, `DELETE FROM rep WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete rep: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("rep %s: %w", username, ErrNotFound)
	}
	return nil
}

// PasswordHashByUsername returns password hash of a rep
func (rs *repStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	var hash string
	err := rs.DB().GetContext(ctx, &hash, `SELECT password_hash FROM rep WHERE username = ?`, un)
	if err != nil {
		return "", fmt.Errorf("can't get rep password hash: %w", notFound(err))
	}
	return hash, nil
}
