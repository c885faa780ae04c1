package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) when a row does not exist. It matches
// sql.ErrNoRows so callers need not import this package.
var ErrNotFound = fmt.Errorf("not found: %w", sql.ErrNoRows)

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
