package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view performs its own checks in
// [ClientConfig.validate] after defaults are applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DownloadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
