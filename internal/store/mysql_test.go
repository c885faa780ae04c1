package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database from MYSQL_TEST_DSN and empties every
// table. Tests are skipped when the variable is not set.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}
	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, q := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"DELETE FROM order_item",
		"DELETE FROM orders",
		"DELETE FROM visit",
		"DELETE FROM reward_claim",
		"DELETE FROM product",
		"DELETE FROM store",
		"DELETE FROM rep",
		"DELETE FROM send_email_request",
		"UPDATE monthly_target SET box_goal = 0, revenue_goal = 0",
		"SET FOREIGN_KEY_CHECKS = 1",
	} {
		_, err = db.db.ExecContext(ctx, q)
		require.NoError(t, err, q)
	}

	return db
}
