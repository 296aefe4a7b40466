// Test database support for the database submodule
package database

import (
	"github.com/Aidin1998/templates/internal/infrastructure/config"
	"go.uber.org/zap"
)

// OpenInMemory opens a migrated, private in-memory SQLite database
func OpenInMemory(logger *zap.Logger) (*Manager, error) {
	return Open(config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         ":memory:",
		AutoMigrate: true,
	}, logger)
}
