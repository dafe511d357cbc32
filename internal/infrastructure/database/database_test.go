package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missiontracker/core/internal/infrastructure/config"
	"github.com/missiontracker/core/internal/infrastructure/database"
	"github.com/missiontracker/core/internal/testutil"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	require.NoError(t, database.Migrate(db))

	version, dirty, err := database.MigrationVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestMigrateDown(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	require.NoError(t, database.MigrateDown(db))

	version, _, err := database.MigrationVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'missions'`))
	assert.Zero(t, n)
}

func TestNew_SQLiteEnforcesForeignKeys(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	var enabled int
	require.NoError(t, db.Get(&enabled, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, enabled)

	_, err := db.Exec(db.Rebind(`INSERT INTO daily_missions (id, mission_id, title, status, priority, created_at, user_id)
		VALUES (?, ?, ?, 'pending', 2, CURRENT_TIMESTAMP, ?)`), "d1", "no-such-mission", "orphan", "ufaq")
	assert.Error(t, err)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := database.New(config.DatabaseConfig{Driver: "nope", Path: filepath.Join(t.TempDir(), "x.db")})
	assert.Error(t, err)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	err := db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO missions (id, title, status, created_at, user_id)
			VALUES ('m1', 'Learn Go', 'active', CURRENT_TIMESTAMP, 'ufaq')`)
		require.NoError(t, err)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM missions`))
	assert.Zero(t, n)
}

func TestHealthCheck(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}
