// Package config handles configuration for the avarich server: defaults,
// JSON overlay, .env file, environment variables and command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - DatabaseDSN: postgres://, mongodb:// or memory:// DSN.
//   - SecretKey: HMAC secret used to sign session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
//   - CORSOrigin: value of Access-Control-Allow-Origin.
//   - LogLevel: debug, info, warn or error.
//   - OTLPEndpoint: OTLP/gRPC collector; empty disables tracing.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	CORSOrigin            string
	LogLevel              string
	OTLPEndpoint          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseDSN = "mongodb://localhost:27017/avarich"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = time.Hour
	c.CORSOrigin = "*"
	c.LogLevel = "info"
	c.OTLPEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file) and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
