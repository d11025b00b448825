// Package config defines environment configuration structs and loaders.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// LoggerEnvConfig controls logger setup only. The missing-value policy
// of the transforms is deliberately not configurable from the
// environment; it is an explicit parameter at every call site.
type LoggerEnvConfig struct {
	Environment string `env:"ENVIRONMENT, default=prod"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
}

func LoadLoggerEnv(ctx context.Context) (*LoggerEnvConfig, error) {
	cfg := &LoggerEnvConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
