package database

import (
	"context"
	"testing"

	"github.com/Aidin1998/templates/internal/infrastructure/config"
	"github.com/Aidin1998/templates/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenInMemoryMigratesSchema(t *testing.T) {
	m, err := OpenInMemory(zap.NewNop())
	require.NoError(t, err)
	defer m.Close()

	for _, model := range models.All() {
		assert.True(t, m.DB().Migrator().HasTable(model), "%T", model)
	}
	assert.NoError(t, m.Ping(context.Background()))

	stats, err := m.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, nil)
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = Open(config.DatabaseConfig{Driver: "postgres", DSN: "postgres://bad host:port/db"}, nil)
	assert.ErrorContains(t, err, "invalid postgres dsn")
}

func TestGormLoggerReportsFailedQueries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := OpenInMemory(zap.New(core))
	require.NoError(t, err)
	defer m.Close()

	err = m.DB().Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)

	failed := logs.FilterMessage("sql failed").All()
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].ContextMap()["sql"], "no_such_table")
}
