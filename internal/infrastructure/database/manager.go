package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Aidin1998/templates/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Connection interface {
	DB() *gorm.DB
	Close() error
	Ping(ctx context.Context) error
}

// Manager owns the gorm handle and its underlying connection pool
type Manager struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ Connection = (*Manager)(nil)

func NewManager(db *gorm.DB, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{db: db, logger: logger}
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Stats returns the connection pool statistics
func (m *Manager) Stats() (sql.DBStats, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}, err
	}
	return sqlDB.Stats(), nil
}

// Migrate creates or updates the tables of every persisted model
func (m *Manager) Migrate(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	m.logger.Info("database schema migrated")
	return nil
}
