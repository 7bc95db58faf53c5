// Package config loads runtime configuration for the CraftConnect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), optionally seeded from a dotenv
//     file given with -e or -env-file, or ./.env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-s string   session store backend
//	-d string   store DSN or SQLite file path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "store_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_prefix": "craftconnect:",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
//
// # Environment
//
// Every field has a CRAFTCONNECT_* variable, e.g. CRAFTCONNECT_API_URL,
// CRAFTCONNECT_STORE, CRAFTCONNECT_STORE_DSN, CRAFTCONNECT_REDIS_ADDR,
// CRAFTCONNECT_LOG_FORMAT.
package config
