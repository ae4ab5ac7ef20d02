package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/mzoric/holidays-eval/pkg/config/env"
)

type Config struct {
	Port         string   `envconfig:"PORT" default:"8080"`
	GroundTruth  string   `envconfig:"GROUND_TRUTH" required:"true"`
	Extension    string   `envconfig:"EXTENSION" default:".jpg"`
	QueryModulus int      `envconfig:"QUERY_MODULUS" default:"100"`
	CorsOrigins  []string `envconfig:"CORS_ORIGINS" default:"*"`
	MaxBodyBytes int64    `envconfig:"MAX_BODY_BYTES" default:"16777216"`
}

// LoadConfig reads the server configuration from MAPEVAL_* environment
// variables, loading a .env file first if one is present.
func LoadConfig() (*Config, error) {
	env.LoadDotEnv(".env")

	var cfg Config
	if err := envconfig.Process("mapeval", &cfg); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}
	if cfg.QueryModulus <= 0 {
		return nil, fmt.Errorf("query modulus must be positive, got %d", cfg.QueryModulus)
	}
	return &cfg, nil
}
