package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the exporter's environment variables.
const EnvPrefix = "GRIDFLAT_"

// ConfigPathVar names the env var pointing at an optional YAML file.
const ConfigPathVar = "GRIDFLAT_CONFIG"

// Load builds a Config by layering defaults, an optional file, and env vars.
// Precedence (low -> high):
//  1. defaults (New())
//  2. YAML file named by GRIDFLAT_CONFIG
//  3. env vars (GRIDFLAT_API_KEY, GRIDFLAT_SERIES_IDS, ...)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(ConfigPathVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// GRIDFLAT_API_KEY -> api_key; list values are comma-separated.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "series_ids" {
			parts := strings.Split(value, ",")
			ids := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					ids = append(ids, p)
				}
			}
			return key, ids
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
