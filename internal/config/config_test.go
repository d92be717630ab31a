package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocsvlab/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "MAX_UPLOAD_MB", "LOG_LEVEL", "EXPORT_DIR", "REPORT_TOP_VALUES", "DATABASE_URL", "EXPORT_TABLE", "SESSION_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 5, cfg.Export.TopValues)
	assert.Equal(t, 64, cfg.Sessions.Limit)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes())
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REPORT_TOP_VALUES", "10")
	t.Setenv("DATABASE_URL", "postgres://localhost/db")
	t.Setenv("EXPORT_TABLE", "orders")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Export.TopValues)
	assert.True(t, cfg.DatabaseEnabled())
	assert.Equal(t, "orders", cfg.Database.Table)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"MAX_UPLOAD_MB", "0"},
		{"REPORT_TOP_VALUES", "-1"},
		{"SESSION_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
