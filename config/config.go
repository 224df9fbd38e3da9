// Package config loads the settings that govern the external collaborators
// around the decoding core: where to dial the sample source, how to tune
// it, and where the terminal display should center itself. None of it is
// consumed by the core, which only ever sees a Source and a Sink.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk YAML shape.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	FreqHz      uint32 `yaml:"freq_hz"`
	GainTenthDb int    `yaml:"gain_tenth_db"`

	Station struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"station"`

	LogFile string `yaml:"logfile"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Host:   "127.0.0.1",
		Port:   1234,
		FreqHz: 162000000,
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: parse")
	}
	return cfg, nil
}
