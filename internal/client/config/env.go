package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/avarich/internal/flagx"
)

type envConfig struct {
	ServerURL      string        `env:"AVARICH_SERVER_URL"`
	DatabasePath   string        `env:"AVARICH_DB"`
	RequestTimeout time.Duration `env:"AVARICH_TIMEOUT"`
	GeminiKeyENG   string        `env:"GEMINI_API_KEY_ENG"`
	GeminiKeyTUN   string        `env:"GEMINI_API_KEY_TUN"`
	GeminiModel    string        `env:"GEMINI_MODEL"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// parseEnv loads the optional .env file and overlays the environment.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err := parseEnvFrom(cfg, nil); err != nil {
		panic(err)
	}
}

// parseEnvFrom overlays cfg from vars, or from the process environment when
// vars is nil.
func parseEnvFrom(cfg *Config, vars map[string]string) error {
	var e envConfig
	var err error
	if vars == nil {
		err = env.Parse(&e)
	} else {
		err = env.ParseWithOptions(&e, env.Options{Environment: vars})
	}
	if err != nil {
		return err
	}

	setString(&cfg.ServerURL, e.ServerURL)
	setString(&cfg.DatabasePath, e.DatabasePath)
	if e.RequestTimeout > 0 {
		cfg.RequestTimeout = e.RequestTimeout
	}
	setString(&cfg.GeminiKeyENG, e.GeminiKeyENG)
	setString(&cfg.GeminiKeyTUN, e.GeminiKeyTUN)
	setString(&cfg.GeminiModel, e.GeminiModel)
	setString(&cfg.LogLevel, e.LogLevel)
	return nil
}
