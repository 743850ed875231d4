// Package config resolves bridge connection settings from the
// environment. Both binaries read the same variables so an agent setup
// only configures the port once.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the socket settings shared by the bridge listener and
// the MCP relay.
type Config struct {
	Host    string        `env:"CW_HOST" envDefault:"127.0.0.1"`
	Port    int           `env:"CW_PORT" envDefault:"53002"`
	Timeout time.Duration `env:"CW_TIMEOUT" envDefault:"30s"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("CW_PORT out of range: %d", cfg.Port)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("CW_TIMEOUT must be positive: %s", cfg.Timeout)
	}
	return cfg, nil
}

// Addr returns the host:port dial/listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
