package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("PAYROLL_WORKERS", "")
	t.Setenv("PAYROLL_COMPUTE_ASYNC", "")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.ComputeAsync)
}

func TestLoadConfig_PayrollOverrides(t *testing.T) {
	t.Setenv("PAYROLL_WORKERS", "16")
	t.Setenv("PAYROLL_COMPUTE_ASYNC", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
	assert.True(t, cfg.ComputeAsync)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("PAYROLL_WORKERS", "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PAYROLL_WORKERS", "4")
	t.Setenv("PAYROLL_COMPUTE_ASYNC", "sometimes")
	_, err = LoadConfig()
	assert.Error(t, err)
}
