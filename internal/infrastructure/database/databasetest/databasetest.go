// Package databasetest opens throwaway SQLite databases migrated with the
// production migrations.
package databasetest

import (
	"fmt"
	"testing"

	"metalshop/internal/infrastructure/config"
	"metalshop/internal/infrastructure/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns an isolated in-memory database. It is closed when the
// test finishes.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.ConnectGorm(config.DBConfig{
		Driver:   config.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
