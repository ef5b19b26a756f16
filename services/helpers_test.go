package services

import (
	"path/filepath"
	"testing"

	"portfolio/config"
	"portfolio/database"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "services.db"),
		DBLogLevel: "silent",
	}
	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	return db
}

func strPtr(s string) *string { return &s }
