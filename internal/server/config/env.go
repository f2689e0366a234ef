package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/avarich/internal/flagx"
)

// envConfig lists the environment variables understood by the server.
// PORT carries a bare port number, as on most hosting platforms.
type envConfig struct {
	Port                  string        `env:"PORT"`
	EndpointAddr          string        `env:"AVARICH_ADDR"`
	DatabaseURI           string        `env:"DATABASE_URI"`
	MongoURI              string        `env:"MONGODB_URI"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY"`
	CORSOrigin            string        `env:"CORS_ORIGIN"`
	LogLevel              string        `env:"LOG_LEVEL"`
	OTLPEndpoint          string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// loadDotEnv is a seam for tests.
var loadDotEnv = func(path string) error {
	return godotenv.Load(path)
}

// parseEnv loads the .env file named by -env (default ".env", a missing file
// is ignored) and overlays the process environment. Variables already set
// in the environment win over the file.
func parseEnv(config *Config) {
	if err := loadDotEnv(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		panic(err)
	}
	applyEnv(config, &e)
}

// parseEnvFrom is parseEnv over an explicit variable set.
func parseEnvFrom(config *Config, vars map[string]string) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return err
	}
	applyEnv(config, &e)
	return nil
}

func applyEnv(config *Config, e *envConfig) {
	if e.Port != "" {
		config.EndpointAddr = ":" + e.Port
	}
	setString(&config.EndpointAddr, e.EndpointAddr)
	setString(&config.DatabaseDSN, e.MongoURI)
	setString(&config.DatabaseDSN, e.DatabaseURI)
	setString(&config.SecretKey, e.SecretKey)
	if e.TokenValidityDuration > 0 {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	setString(&config.CORSOrigin, e.CORSOrigin)
	setString(&config.LogLevel, e.LogLevel)
	setString(&config.OTLPEndpoint, e.OTLPEndpoint)
}
