package config

import "github.com/dmitrijs2005/craftconnect/internal/common"

// Store backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Config holds runtime settings for the CraftConnect CLI.
//
// StoreDSN is the SQLite file path or the PostgreSQL connection string,
// depending on StoreBackend. An empty path for SQLite means
// ".craftconnect/session.db" under the working directory.
type Config struct {
	APIBaseURL    string `json:"api_base_url" env:"CRAFTCONNECT_API_URL"`
	StoreBackend  string `json:"store_backend" env:"CRAFTCONNECT_STORE"`
	StoreDSN      string `json:"store_dsn" env:"CRAFTCONNECT_STORE_DSN"`
	RedisAddr     string `json:"redis_addr" env:"CRAFTCONNECT_REDIS_ADDR"`
	RedisPassword string `json:"redis_password" env:"CRAFTCONNECT_REDIS_PASSWORD"`
	RedisDB       int    `json:"redis_db" env:"CRAFTCONNECT_REDIS_DB"`
	RedisPrefix   string `json:"redis_prefix" env:"CRAFTCONNECT_REDIS_PREFIX"`
	LogLevel      string `json:"log_level" env:"CRAFTCONNECT_LOG_LEVEL"`
	LogFormat     string `json:"log_format" env:"CRAFTCONNECT_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.StoreBackend = StoreSQLite
	c.StoreDSN = ""
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "craftconnect:"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
