// Package config loads runtime configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultTokenTTL   = 1800 // seconds
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBName     = "inklet"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultBcryptCost = 12
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port            int            `yaml:"port"`
	Env             string         `yaml:"env"` // "development" | "production"
	Database        DatabaseConfig `yaml:"database"`
	RedisURL        string         `yaml:"redis_url"`
	JWTSecret       string         `yaml:"jwt_secret"`
	TokenTTLSeconds int            `yaml:"token_ttl_seconds"`
	BcryptCost      int            `yaml:"bcrypt_cost"`
	AllowedOrigins  []string       `yaml:"allowed_origins"`
	Log             LogConfig      `yaml:"log"`
	Storage         StorageConfig  `yaml:"storage"`

	// DSN is assembled from Database after loading.
	DSN string `yaml:"-"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type LogConfig struct {
	Dir          string `yaml:"dir"`
	Level        string `yaml:"level"`
	RotateSizeMB int    `yaml:"rotate_size_mb"`
	RotateKeep   int    `yaml:"rotate_keep"`
}

type StorageConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicURL       string `yaml:"public_url"`
	PathStyle       bool   `yaml:"path_style"`
}

// Load reads the config file at path. A missing file yields defaults so the
// server can start against a local database.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.DSN = cfg.Database.DSNValue()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.TokenTTLSeconds <= 0 {
		c.TokenTTLSeconds = defaultTokenTTL
	}
	if c.BcryptCost <= 0 {
		c.BcryptCost = defaultBcryptCost
	}
	if v := strings.TrimSpace(os.Getenv("INKLET_JWT_SECRET")); v != "" {
		c.JWTSecret = v
	}

	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, origin := range c.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.AllowedOrigins = origins
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

// TokenTTL returns the session token lifetime.
func (c *AppConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}
