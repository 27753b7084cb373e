package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without API key", func(t *testing.T) {
		t.Setenv("API_KEY", "")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "8080") // register restore, then clear to exercise the default
		os.Unsetenv("PORT")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "craftforge", cfg.DBName)
		assert.Equal(t, "dev", cfg.Environment)
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("env overrides respected", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "db.internal", cfg.DBHost)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "h",
		DBPort:     "5433",
		DBName:     "d",
	}

	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", cfg.GetDBConnString())
}
