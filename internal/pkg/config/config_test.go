package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

const configYAML = `server:
  addr: "127.0.0.1:8000"
  readTimeout: 10s
  writeTimeout: 10s
  idleTimeout: 30s
logger:
  level: "info"
  output:
    - "stdout"
db:
  addr: "localhost:5432"
  username: "recipeapp"
  password: "secret"
  db: "recipeapp"
  sslmode: "disable"
  maxConns: "10"
  version: 2
rdb:
  addr: "localhost:6379"
  db: 0
  exp: 5m
`

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	return path
}

func TestNew(t *testing.T) {
	cfg, err := config.New(writeConfig(t))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	require.Equal(t, time.Second*10, cfg.Server.ReadTimeout)
	require.Equal(t, "recipeapp", cfg.PostgresDB.Username)
	require.Equal(t, 2, cfg.PostgresDB.Version)
	require.Equal(t, time.Minute*5, cfg.RedisCache.ExpTime)
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("POSTGRES_USER", "override")
	t.Setenv("POSTGRES_DB", "override_db")

	cfg, err := config.New(writeConfig(t))
	require.NoError(t, err)

	require.Equal(t, "override", cfg.PostgresDB.Username)
	require.Equal(t, "override_db", cfg.PostgresDB.DB)
}

func TestNewMissingFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
