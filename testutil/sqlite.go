// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/expensex/expensex-api/config"
	"github.com/stretchr/testify/require"
)

// NewSQLiteDB returns a migrated sqlite database living in the test's temp dir.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "expensex.db"),
	}

	require.NoError(t, config.RunMigrations(cfg))

	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}
