package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version shown in the startup banner.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the athenc server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DownloadsDir is the directory transformed files are saved into.
	DownloadsDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// JanitorInterval defines how often the temp-file janitor should run.
	JanitorInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// Defaults applied by GetClientConfig when a setting is absent from every
// configuration source.
const (
	defaultServerAddress  = "http://localhost:8000"
	defaultRequestTimeout = 60 * time.Second
	defaultJanitorSweep   = 10 * time.Minute
)

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for absent settings, and
// validates the resulting [ClientConfig]. The default downloads directory is
// "downloads" under the user's home directory, falling back to the current
// working directory when the home directory cannot be resolved.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DownloadsDir: cfg.Storage.DownloadsDir,
		},
		Workers: ClientWorkers{JanitorInterval: cfg.Workers.JanitorInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultServerAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.JanitorInterval <= 0 {
		cfg.Workers.JanitorInterval = defaultJanitorSweep
	}
	if cfg.Storage.DownloadsDir == "" {
		cfg.Storage.DownloadsDir = defaultDownloadsDir()
	}
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "downloads"
	}
	return filepath.Join(home, "downloads")
}
