package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/radhian/receipt-reconciliation/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "API_KEY", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_DATABASE", "ALLOWED_DATABASES", "BATCH_WORKERS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "LOANS")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, consts.DefaultPort, cfg.Port)
	assert.Equal(t, consts.DefaultDriver, cfg.DB.Driver)
	assert.Equal(t, consts.DefaultAPIKey, cfg.APIKey)
	assert.Equal(t, []string{"LOANS"}, cfg.AllowedDatabases)
	assert.Equal(t, consts.DefaultBatchWorkers, cfg.BatchWorkers)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nAPI_KEY=secret\nDB_DATABASE=LOANS\nALLOWED_DATABASES=LOANS, ARCHIVE ,\nBATCH_WORKERS=abc\nAPP_ENV=production\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg := Load(envFile)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, []string{"LOANS", "ARCHIVE"}, cfg.AllowedDatabases)
	assert.Equal(t, consts.DefaultBatchWorkers, cfg.BatchWorkers)
	assert.True(t, cfg.IsProduction())
}
