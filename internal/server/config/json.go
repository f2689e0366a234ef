package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/avarich/internal/flagx"
	"github.com/dmitrijs2005/avarich/internal/timex"
)

// JsonConfig mirrors Config for JSON files; durations accept "1h" or
// integer nanoseconds. Fields left out of the file keep their current value.
type JsonConfig struct {
	EndpointAddr          string          `json:"endpoint_addr"`
	DatabaseDSN           string          `json:"database_dsn"`
	SecretKey             string          `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	CORSOrigin            string          `json:"cors_origin"`
	LogLevel              string          `json:"log_level"`
	OTLPEndpoint          string          `json:"otlp_endpoint"`
}

// parseJson overlays values from the file given by -c/-config. It panics
// when the file cannot be read or parsed.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.CORSOrigin, c.CORSOrigin)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
