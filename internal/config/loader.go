package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the YAML file when no --config flag is given.
const PathEnv = "CONFIG_PATH"

const defaultPath = "config.yaml"

// Load reads the file named by CONFIG_PATH, or ./config.yaml when it exists.
// Environment variables override the file; env-default tags fill the rest.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(PathEnv))
}

// LoadFile is Load with an explicit path, which must exist. An empty path
// behaves like Load without CONFIG_PATH.
func LoadFile(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns "" when only the environment should be read.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return path, nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config: %w", err)
	}
	return defaultPath, nil
}

func describe(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}
