package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the athenc
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds network address and timeout settings for the outbound
	// connection to the athenc server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings of the local downloads directory where
	// transformed files are saved.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the startup banner.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound transport to the athenc server.
type Adapter struct {
	// HTTPAddress is the base address of the athenc server, either a bare
	// "host:port" or a full URL (e.g. "https://athenc.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the transport gives up (e.g. "30s", "2m"). The
	// controller itself enforces no additional timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds file-system settings for saved results.
type Storage struct {
	// DownloadsDir is the directory where transformed files are written.
	// Env: STORAGE_DOWNLOADS_DIR
	DownloadsDir string `env:"DOWNLOADS_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval defines how often the downloads-directory janitor
	// sweeps for stale temporary files (e.g. "10m", "1h").
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig assembles the full configuration by merging
// environment variables, command-line flags, and the optional JSON file,
// in that priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
