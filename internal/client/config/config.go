package config

import "time"

// Config holds runtime settings for the avarich CLI.
//
// The two Gemini keys back the chat language toggle: GeminiKeyENG serves
// English, GeminiKeyTUN serves Tunisian.
type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
	GeminiKeyENG   string
	GeminiKeyTUN   string
	GeminiModel    string
	LogLevel       string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.DatabasePath = "avarich.db"
	c.RequestTimeout = 10 * time.Second
	c.GeminiModel = "gemini-1.5-flash"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, JSON, environment and flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
