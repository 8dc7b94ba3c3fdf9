package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds runtime configuration read from the environment.
type Server struct {
	Addr       string `env:"SISTUR_ADDR" envDefault:":8080"`
	DataDir    string `env:"SISTUR_DATA_DIR" envDefault:"data"`
	ConfigPath string `env:"SISTUR_CONFIG" envDefault:""`
	Debug      bool   `env:"SISTUR_DEBUG" envDefault:"false"`
}

// ServerFromEnv loads server configuration from environment variables.
func ServerFromEnv() (Server, error) {
	var s Server
	if err := env.Parse(&s); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
