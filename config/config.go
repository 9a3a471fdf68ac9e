package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"CONNECT3_LOG_LEVEL" env-default:"info"`
	Seed       uint64     `yaml:"seed" env:"CONNECT3_SEED" env-default:"0"` // 0 seeds from the clock
	Discount   float64    `yaml:"discount" env:"CONNECT3_DISCOUNT" env-default:"1"`
	Experiment Experiment `yaml:"experiment"`
}

type Experiment struct {
	Games     int    `yaml:"games" env:"CONNECT3_EXPERIMENT_GAMES" env-default:"30"`
	OutputDir string `yaml:"output-dir" env:"CONNECT3_EXPERIMENT_DIR" env-default:"experiments"`
}

// Load reads the YAML file at path, when given, then the environment.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}
	return config, nil
}

// MustLoad is Load, panicking on failure
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
