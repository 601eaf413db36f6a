package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load assembles the exporter configuration. Values come from the YAML file
// named by CONFIG_PATH, then the environment, then env-default tags, with
// the environment taking precedence over the file.
//
// Without CONFIG_PATH a missing ./config.yaml is fine: the exporter runs on
// defaults, which point at the public jbovlaste export page. A CONFIG_PATH
// naming a missing file is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: %s %s: %w", configPathEnv, path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
