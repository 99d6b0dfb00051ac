// Package dbtest opens throwaway sqlite databases for package tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	database "academia_backend/internals/databases"
)

// New returns a migrated in-memory database private to t. The shared cache
// plus a single connection keeps every query on the same memory database.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	cfg := &configs.Config{
		DBDriver:   "sqlite",
		SQLiteDSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
		DBLogLevel: "silent",
	}

	db, err := database.Open(cfg)
	require.NoError(t, err, "open sqlite")
	database.TunePool(db, cfg.DBDriver)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.AutoMigrate(db), "migrate")
	return db
}
