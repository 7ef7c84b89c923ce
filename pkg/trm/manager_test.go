package trm

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithIsolation(t *testing.T) {
	m := &txManager{}
	WithIsolation(sql.LevelRepeatableRead)(m)

	require.NotNil(t, m.opts)
	assert.Equal(t, sql.LevelRepeatableRead, m.opts.Isolation)
}

func TestManager_NestedBeginReusesTransaction(t *testing.T) {
	m := &txManager{}
	outer := withTx(context.Background(), &sqlx.Tx{})

	ctx, tx, err := m.BeginTx(outer)
	require.NoError(t, err)
	assert.Equal(t, outer, ctx)

	// the inner handle must not touch the outer transaction
	assert.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())
}

func TestExtractTx_Missing(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))
}
