package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yml"

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	Terminal  Terminal `yaml:"terminal"`
}

type Terminal struct {
	EmptySymbol string `yaml:"empty-symbol" env:"TICTACTOE_EMPTY_SYMBOL" env-default:"."`
	ShowIndexes bool   `yaml:"show-indexes" env:"TICTACTOE_SHOW_INDEXES" env-default:"false"`
}

// Load - reads path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
