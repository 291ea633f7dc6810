package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Load default config when no config file is present", func(t *testing.T) {
		cfg, err := LoadConfig(".")
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)

		assert.True(t, cfg.Server.RateLimit.Enabled)
		assert.Equal(t, float64(10), cfg.Server.RateLimit.RPS)
		assert.Equal(t, 20, cfg.Server.RateLimit.Burst)

		assert.False(t, cfg.Server.Auth.Enabled)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Encoding)

		assert.Equal(t, 9090, cfg.Metrics.Port)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)

		assert.Equal(t, "", cfg.Redis.Addr)
		assert.Equal(t, 0, cfg.Redis.DB)

		assert.Equal(t, int32(28), cfg.Calculator.Precision)

		assert.Equal(t, "0 0 * * *", cfg.Batch.UsageReportSchedule)
		assert.Equal(t, time.Duration(60), cfg.Batch.UsageReportTimeout)
	})

	t.Run("Environment variables override defaults", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9999")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		defer os.Unsetenv("SERVER_PORT")
		defer os.Unsetenv("REDIS_ADDR")

		cfg, err := LoadConfig(".")
		assert.NoError(t, err)

		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	})

	t.Run("Return error when config file is invalid", func(t *testing.T) {
		invalidConfigPath := "./invalid_config"
		os.WriteFile(invalidConfigPath, []byte("invalid_yaml: : :"), 0644)
		defer os.Remove(invalidConfigPath)

		_, err := LoadConfig("./invalid_config")
		assert.NoError(t, err)
	})
}
