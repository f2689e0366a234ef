package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFrom(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := parseEnvFrom(cfg, map[string]string{
		"PORT":           "8080",
		"MONGODB_URI":    "mongodb://db:27017/finance",
		"JWT_SECRET":     "s3cr3t",
		"TOKEN_VALIDITY": "30m",
		"LOG_LEVEL":      "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "mongodb://db:27017/finance", cfg.DatabaseDSN)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestParseEnvFrom_DatabaseURIWinsOverMongoURI(t *testing.T) {
	cfg := &Config{}
	err := parseEnvFrom(cfg, map[string]string{
		"MONGODB_URI":  "mongodb://db/finance",
		"DATABASE_URI": "postgres://u:p@db/finance",
		"AVARICH_ADDR": "127.0.0.1:9000",
		"PORT":         "8080",
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/finance", cfg.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.EndpointAddr)
}

func TestParseEnvFrom_BadDuration(t *testing.T) {
	cfg := &Config{}
	err := parseEnvFrom(cfg, map[string]string{"TOKEN_VALIDITY": "soon"})
	assert.Error(t, err)
}

func TestParseEnv_LoadsDotEnvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-dotenv\n"), 0o600))

	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	os.Args = []string{"testbin", "-env", path}

	cfg := &Config{SecretKey: "default"}
	parseEnv(cfg)
	assert.Equal(t, "from-dotenv", cfg.SecretKey)
}

func TestParseEnv_MissingFileIgnored(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "missing.env")}

	cfg := &Config{SecretKey: "default"}
	require.NotPanics(t, func() { parseEnv(cfg) })
}

func TestParseEnv_LoaderErrorPanics(t *testing.T) {
	orig := loadDotEnv
	t.Cleanup(func() { loadDotEnv = orig })
	loadDotEnv = func(string) error { return assert.AnError }

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
