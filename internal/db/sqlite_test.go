package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateTwice(t *testing.T) {
	conn, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('operators', 'charges', 'pagarme_webhook_events')`).Scan(&n))
	require.Equal(t, 3, n)
}
