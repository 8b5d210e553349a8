package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds connection settings for the order service.
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	Token     string `yaml:"token"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// DefaultConfig returns a Config pointed at a local development service.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8373",
		TimeoutMs: 10000,
	}
}

// LoadConfig builds the effective configuration: defaults, overridden by
// ~/.bancada/config.yaml when present, overridden by BANCADA_* environment
// variables. A missing config file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("BANCADA_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".bancada", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("BANCADA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BANCADA_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("BANCADA_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = DefaultConfig().TimeoutMs
	}
	return cfg, nil
}
