package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "fintrack",
		Password:      "secret",
		Database:      "fintrack_dev",
		SSLMode:       "disable",
		MaxOpenConns:  25,
		MaxIdleConns:  10,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 3,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("Missing host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Port out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 0
		assert.Error(t, cfg.Validate())

		cfg.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Invalid SSL mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.SSLMode = "maybe"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Non-positive pool sizes", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxOpenConns = 0
		assert.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.MaxIdleConns = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigDSN(t *testing.T) {
	dsn := validConfig().DSN()
	assert.Equal(t, "host=localhost port=5432 user=fintrack password=secret dbname=fintrack_dev sslmode=disable", dsn)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5433, ParsePort("5433"))
	assert.Equal(t, 5432, ParsePort(""))
	assert.Equal(t, 5432, ParsePort("not-a-port"))
	assert.Equal(t, 5432, ParsePort("-1"))
}
