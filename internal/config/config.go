package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds everything the CLI reads from the environment. A .env file in
// the working directory is honored when present (loaded by the entrypoints).
type Config struct {
	// DBPath is the SQLite store location (TLAPALERIA_DB_PATH).
	DBPath string `envconfig:"DB_PATH" default:"tlapaleria.db"`
	// LogLevel is a logrus level name (TLAPALERIA_LOG_LEVEL).
	LogLevel string `envconfig:"LOG_LEVEL" default:"warning"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("tlapaleria", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}
	return cfg, nil
}
