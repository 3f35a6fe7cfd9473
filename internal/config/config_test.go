package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "clubs.db", cfg.DB.Path)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTLDuration())
	assert.Equal(t, "club-service", cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "HTTP_PORT=9090\nDB_DRIVER=postgres\nDB_NAME=clubs\nREDIS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.HTTPPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "clubs", cfg.DB.Name)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadConfig_ProductionLogging(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }, "DB_DRIVER"},
		{"sqlite without path", func(c *Config) { c.DB.Path = "" }, "DB_PATH"},
		{"postgres without host", func(c *Config) { c.DB.Driver = "postgres"; c.DB.Host = "" }, "DB_HOST"},
		{"idle above open", func(c *Config) { c.DB.MaxIdleConns = 100 }, "DB_MAX_IDLE_CONNS"},
		{"redis without ttl", func(c *Config) { c.Redis.Enabled = true; c.Redis.CacheTTL = 0 }, "REDIS_CACHE_TTL"},
		{"zero rps", func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, "RATE_LIMIT_RPS"},
		{"no port", func(c *Config) { c.App.HTTPPort = "" }, "HTTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", User: "u", Password: "p", Name: "n", Port: "1", SSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable", c.DSN())
}
