package seeds

import (
	"testing"

	"recibo/api/internal/db"
	"recibo/api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsRepeatable(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, db.Migrate(conn))

	require.NoError(t, Run(conn))
	require.NoError(t, Run(conn))

	list, err := repository.ListCharges(conn, 10)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	op, err := repository.OperatorByEmail(conn, "caixa@email.com")
	require.NoError(t, err)
	assert.NotNil(t, op)
}
