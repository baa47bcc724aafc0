package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/linguaflow/scorereport/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "header", cfg.AuthMode)
	assert.Equal(t, []string{"admin", "service_role"}, cfg.AdminRoles)
	assert.Equal(t, 10000, cfg.ReportMaxRows)
	assert.Equal(t, 30, cfg.DefaultRangeDays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_DSN", "file:dev.db")
	t.Setenv("ADMIN_ROLES", "admin, supervisor")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("REPORT_MAX_ROWS", "500")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "file:dev.db", cfg.DBDSN)
	assert.Equal(t, []string{"admin", "supervisor"}, cfg.AdminRoles)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 500, cfg.ReportMaxRows)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REPORT_MAX_ROWS", "lots")
	t.Setenv("LOG_PRETTY", "maybe")

	cfg := config.Load()

	assert.Equal(t, 10000, cfg.ReportMaxRows)
	assert.False(t, cfg.LogPretty)
}
