package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mysql]
dsn = "user:pw@tcp(localhost:3306)/sales?parseTime=true"
automigrate = true

[http]
port = "8081"
allowed_origins = ["https://sales.example.com"]

[sales]
timezone = "Asia/Makassar"
reward_threshold = 30

[snapshot]
worker_interval = "2m"
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://sales.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "Asia/Makassar", cfg.Sales.Timezone)
	assert.EqualValues(t, 30, cfg.Sales.RewardThreshold)
	assert.Equal(t, 2*time.Minute, cfg.Snapshot.WorkerInterval)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("SALES_LANGUAGE", "en")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "sales")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "salesaice")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "en", cfg.Sales.Language)
	assert.Equal(t, "sales:pw@tcp(db:3306)/salesaice?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
}
