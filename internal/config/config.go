package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-promote/internal/config/configs"
)

// Config aggregates every configuration section. Each section is parsed
// from environment variables under its own prefix; see the configs package
// for keys and defaults.
type Config struct {
	// Env names the deployment (prod, dev). Only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Kafka   configs.Kafka    `envPrefix:"KAFKA_"`
	Gateway configs.Gateway  `envPrefix:"GATEWAY_"`
	Promo   configs.Promo    `envPrefix:"PROMO_"`
}

// Load reads the configuration from the environment, applying defaults for
// unset keys.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
