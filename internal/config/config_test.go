package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DB_DSN", "STORAGE_BACKEND", "PEBBLE_DIR", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.PebbleDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Export.ICSPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
storage:
  backend: Pebble
  pebble_dir: /var/lib/events
logging:
  level: debug
export:
  ics_path: /tmp/events.ics
  schedule: "0 * * * *"
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Listen)
		assert.Equal(t, BackendPebble, cfg.Storage.Backend)
		assert.Equal(t, "/var/lib/events", cfg.Storage.PebbleDir)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format, "missing keys keep defaults")
		assert.Equal(t, "/tmp/events.ics", cfg.Export.ICSPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("listen: [unterminated"), 0600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("DB_DSN selects postgres", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ApplyEnv(envMap(map[string]string{"DB_DSN": "postgres://x", "PORT": "3000"}))

		assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
		assert.Equal(t, "postgres://x", cfg.Storage.PostgresDSN)
		assert.Equal(t, ":3000", cfg.Listen)
	})

	t.Run("explicit backend wins over DB_DSN", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ApplyEnv(envMap(map[string]string{"DB_DSN": "postgres://x", "STORAGE_BACKEND": "memory"}))
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	})

	t.Run("logging", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ApplyEnv(envMap(map[string]string{"LOG_LEVEL": "warn", "LOG_FORMAT": "json", "APP_NAME": "cal"}))
		assert.Equal(t, Logging{Level: "warn", Format: "json", App: "cal"}, cfg.Logging)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "redis"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Storage.Backend = BackendPostgres
	assert.Error(t, cfg.Validate(), "postgres without dsn")

	cfg = DefaultConfig()
	cfg.Export.ICSPath = "/tmp/x.ics"
	cfg.Export.Schedule = "not a cron"
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Listen = ":7070"

	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", loaded.Listen)
}
