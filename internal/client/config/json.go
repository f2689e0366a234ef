package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/avarich/internal/flagx"
	"github.com/dmitrijs2005/avarich/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL      string          `json:"server_url"`
	DatabasePath   string          `json:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	GeminiKeyENG   string          `json:"gemini_key_eng"`
	GeminiKeyTUN   string          `json:"gemini_key_tun"`
	GeminiModel    string          `json:"gemini_model"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file leave cfg untouched. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.GeminiKeyENG, jc.GeminiKeyENG)
	setString(&cfg.GeminiKeyTUN, jc.GeminiKeyTUN)
	setString(&cfg.GeminiModel, jc.GeminiModel)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
