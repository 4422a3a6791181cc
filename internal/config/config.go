// Package config defines exporter configuration and its loading order.
//
// Conventions follow the rest of the module: defaults first, optional YAML
// file next, environment last, with command-line flags applied by the
// caller on top of the loaded result.
package config

// Config holds the settings shared by both exporters.
type Config struct {
	// APIKey authenticates against the GRID data portal.
	APIKey string `koanf:"api_key"`

	// BaseURL is the GRID API root.
	BaseURL string `koanf:"base_url"`

	// Output is the output filename stem, without extension.
	Output string `koanf:"output"`

	// DateSuffix appends _YYYYMMDD_HHMM to the output filename.
	DateSuffix bool `koanf:"date_suffix"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SeriesIDs lists the series to download and flatten.
	SeriesIDs []string `koanf:"series_ids"`

	// RetryAttempts bounds the download retry loop.
	RetryAttempts int `koanf:"retry_attempts"`

	// RequestTimeoutMS is the per-request HTTP timeout.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// RetryBackoffMS is the fixed delay before retrying an
	// unclassified server error.
	RetryBackoffMS int `koanf:"retry_backoff_ms"`
}

// New returns a Config populated with defaults. The retry shape matches
// the portal's documented client behavior: five attempts, three-second
// request timeout, one-second fallback backoff.
func New() *Config {
	return &Config{
		BaseURL:          "https://api.grid.gg",
		DateSuffix:       true,
		LogLevel:         "info",
		RetryAttempts:    5,
		RequestTimeoutMS: 3000,
		RetryBackoffMS:   1000,
	}
}

// Validate checks the fields no run can proceed without.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if len(c.SeriesIDs) == 0 {
		return ErrNoSeriesIDs
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	return nil
}
