package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Astro   AstroConfig   `yaml:"astro"`
	Posts   PostsConfig   `yaml:"posts"`
	Storage StorageConfig `yaml:"storage"`
	Stats   StatsConfig   `yaml:"stats"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig controls token issuing.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// AstroConfig tunes the birth-chart service.
type AstroConfig struct {
	DefaultTimezone string `yaml:"defaultTimezone"`
	HistoryLimit    int    `yaml:"historyLimit"`
	TrendingLimit   int    `yaml:"trendingLimit"`
}

// PostsConfig bounds the community feed.
type PostsConfig struct {
	MaxContentLength int `yaml:"maxContentLength"`
	ListLimit        int `yaml:"listLimit"`
}

// StorageConfig selects where profiles and users are persisted. Postgres
// wins when a DSN is set, then SQLite, then process memory.
type StorageConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// SQLiteConfig points at a local database file.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// StatsConfig controls where sign popularity counters live.
type StatsConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the counters.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from CONFIG_PATH (or configs/config.yaml when
// present) and environment variables.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from path, which may be empty, and applies
// environment overrides on top.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err = tomlToYAML(data)
		if err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// tomlToYAML re-encodes a TOML document so both formats share the yaml
// field tags and duration parsing.
func tomlToYAML(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
	if v := os.Getenv("ASTRO_DEFAULT_TIMEZONE"); v != "" {
		cfg.Astro.DefaultTimezone = v
	}
	if v := os.Getenv("ASTRO_HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Astro.HistoryLimit = parsed
		}
	}
	if v := os.Getenv("ASTRO_TRENDING_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Astro.TrendingLimit = parsed
		}
	}
	if v := os.Getenv("POSTS_MAX_CONTENT_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Posts.MaxContentLength = parsed
		}
	}
	if v := os.Getenv("POSTS_LIST_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Posts.ListLimit = parsed
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Storage.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLite.Path = v
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Stats.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Stats.Valkey.Addr = v
	}
	if v := os.Getenv("VALKEY_PREFIX"); v != "" {
		cfg.Stats.Valkey.Prefix = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: AuthConfig{
			Secret:   "dev-secret-change-me",
			TokenTTL: 30 * 24 * time.Hour,
		},
		Astro: AstroConfig{
			DefaultTimezone: "UTC",
			HistoryLimit:    20,
			TrendingLimit:   5,
		},
		Posts: PostsConfig{
			MaxContentLength: 1000,
			ListLimit:        50,
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Stats: StatsConfig{
			Valkey: ValkeyConfig{
				Prefix: "astro",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if _, err := time.LoadLocation(c.Astro.DefaultTimezone); err != nil {
		return fmt.Errorf("astro.defaultTimezone: %w", err)
	}
	if c.Astro.HistoryLimit <= 0 {
		return errors.New("astro.historyLimit must be positive")
	}
	if c.Astro.TrendingLimit <= 0 || c.Astro.TrendingLimit > 12 {
		return errors.New("astro.trendingLimit must be between 1 and 12")
	}
	if c.Posts.MaxContentLength <= 0 {
		return errors.New("posts.maxContentLength must be positive")
	}
	if c.Posts.ListLimit <= 0 {
		return errors.New("posts.listLimit must be positive")
	}
	if c.Storage.Postgres.MinConns < 0 || c.Storage.Postgres.MaxConns < 0 {
		return errors.New("storage.postgres connection counts cannot be negative")
	}
	if c.Stats.Valkey.Enabled && strings.TrimSpace(c.Stats.Valkey.Addr) == "" {
		return errors.New("stats.valkey.addr cannot be empty when valkey is enabled")
	}
	return nil
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
