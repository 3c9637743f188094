// Package testdb opens throwaway SQLite databases with the production schema for tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskboard/taskboard/internal/db"
)

// New returns a migrated in-memory database private to the calling test. It is closed when the
// test finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	// a named shared-cache database so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), db.Config(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err, "Failed to create in-memory database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// sqlite allows one writer; a single connection avoids "table is locked" inside transactions
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb), "Failed to run database migrations")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gdb
}
