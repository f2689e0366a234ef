// Package config loads runtime configuration for the avarich CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. A .env file (-env, default ".env") and the process environment.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the avarich server
//	-f string   path of the local sqlite cache
//	-t int      request timeout (seconds)
//	-m string   Gemini model name
//
// Environment
//
//	AVARICH_SERVER_URL, AVARICH_DB, AVARICH_TIMEOUT,
//	GEMINI_API_KEY_ENG, GEMINI_API_KEY_TUN, GEMINI_MODEL, LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:3000",
//	  "database_path": "avarich.db",
//	  "request_timeout": "10s",
//	  "gemini_key_eng": "...",
//	  "gemini_key_tun": "...",
//	  "gemini_model": "gemini-1.5-flash"
//	}
package config
