package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientConfig_ApplyDefaults verifies that every absent setting receives
// its documented default.
func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, defaultServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultJanitorSweep, cfg.Workers.JanitorInterval)
	assert.NotEmpty(t, cfg.Storage.DownloadsDir)
}

// TestClientConfig_ApplyDefaults_KeepsExplicitValues verifies that defaults
// never override values set by a configuration source.
func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "athenc.example.com:443",
			RequestTimeout: 5 * time.Second,
		},
		Storage: ClientStorage{DownloadsDir: "/tmp/out"},
		Workers: ClientWorkers{JanitorInterval: time.Minute},
	}

	cfg.applyDefaults()

	assert.Equal(t, "athenc.example.com:443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/out", cfg.Storage.DownloadsDir)
	assert.Equal(t, time.Minute, cfg.Workers.JanitorInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "localhost:8000", RequestTimeout: time.Minute},
			Storage: ClientStorage{DownloadsDir: "/tmp/out"},
			Workers: ClientWorkers{JanitorInterval: time.Minute},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("missing adapter address", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("zero request timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("missing downloads dir", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DownloadsDir = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("zero janitor interval", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.JanitorInterval = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})
}
