package config

import (
	"fmt"
	"os"

	"xrayctl/pkg/logger"

	"github.com/pelletier/go-toml/v2"
)

// Config collects everything the commands need: the directory the managed
// config files live under, defaults for the generate command and logger
// settings. Paths are derived from BaseDir by the storage layer.
type Config struct {
	BaseDir  string        `toml:"base_dir"`
	Logger   logger.Config `toml:"logger"`
	Generate Generate      `toml:"generate"`
}

type Generate struct {
	Domain    string `toml:"domain"`
	Transport string `toml:"transport"`
}

func Default() *Config {
	return &Config{
		BaseDir: ".",
		Logger: logger.Config{
			Level: "info",
		},
		Generate: Generate{
			Domain:    "localhost",
			Transport: "xhttp",
		},
	}
}

// New loads the optional TOML settings file on top of the defaults. A missing
// file is not an error; the tool works without one.
func New(configPath string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", configPath, err)
	}

	return cfg, nil
}
