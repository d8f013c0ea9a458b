package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"snaplink/internal/config/configs"
)

const envDevelopment = "development"

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment. "development" makes the
	// redirect pipeline geo-locate Geo.DevIP instead of the visitor.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Geo    configs.Geo      `envPrefix:"GEO_"`
	Auth   configs.Auth     `envPrefix:"AUTH_"`
	Upload configs.Upload   `envPrefix:"UPLOAD_"`
	Queue  configs.Queue    `envPrefix:"QUEUE_"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// Load reads configuration from environment variables into a Config. Values
// from a .env file in the working directory are applied first when the file
// exists; variables already set in the environment win.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
