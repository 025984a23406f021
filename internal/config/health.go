package config

import (
	"context"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tallybot/pkg/log"
)

// HealthConfig binds the liveness endpoint. PORT is set by most hosting platforms.
type HealthConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

func NewHealthConfig(ctx context.Context) *HealthConfig {
	c := &HealthConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Health config")
	}
	return c
}

func (c HealthConfig) Addr() string {
	return net.JoinHostPort("", c.Port)
}
