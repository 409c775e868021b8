package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const ProdEnv = "prod"

// Holidaze API
const HOLIDAZE_API_ENDPOINT_BASE = "https://v2.api.noroff.dev"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_PAGE_RESOURCE = "venues_page.json"
const VENUE_RESOURCE = "venue.json"
const PROFILE_RESOURCE = "profile.json"
const PROFILE_VENUES_RESOURCE = "profile_venues.json"
const LOGIN_RESPONSE_RESOURCE = "login_response.json"

// Config holds all configuration values.
type Config struct {
	Env     string `mapstructure:"ENV"`
	AppPort string `mapstructure:"APP_PORT"`

	// Holidaze API.
	APIBaseURL           string        `mapstructure:"HOLIDAZE_API_BASE_URL"`
	APIKey               string        `mapstructure:"HOLIDAZE_API_KEY"`
	HTTPTimeout          time.Duration `mapstructure:"HTTP_TIMEOUT"`
	APIRequestsPerSecond float64       `mapstructure:"API_REQUESTS_PER_SECOND"`
	APIBurst             int           `mapstructure:"API_BURST"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	SessionTTL             time.Duration `mapstructure:"SESSION_TTL"`
	VenueCacheTTL          time.Duration `mapstructure:"VENUE_CACHE_TTL"`
	CatalogRefreshInterval time.Duration `mapstructure:"CATALOG_REFRESH_INTERVAL"`
	CatalogMaxPages        int           `mapstructure:"CATALOG_MAX_PAGES"`

	ResourcesPath string `mapstructure:"RESOURCES_PATH"`
}

// IsProduction reports whether the real API and Redis should be used.
func (c *Config) IsProduction() bool {
	return c.Env == ProdEnv
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("HOLIDAZE_API_BASE_URL", HOLIDAZE_API_ENDPOINT_BASE)
	v.SetDefault("HOLIDAZE_API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("API_REQUESTS_PER_SECOND", 5)
	v.SetDefault("API_BURST", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("VENUE_CACHE_TTL", "5m")
	v.SetDefault("CATALOG_REFRESH_INTERVAL", "4m")
	v.SetDefault("CATALOG_MAX_PAGES", 10)
	v.SetDefault("RESOURCES_PATH", filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX))
}

// LoadConfig reads config.yaml from . or ./config when present, then lets
// environment variables override it. Missing keys fall back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.CatalogMaxPages < 1 {
		cfg.CatalogMaxPages = 1
	}
	return &cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// ResourcePath joins a fixture file name onto the resources directory.
func ResourcePath(resourcesDir, resourceFile string) string {
	return filepath.Join(resourcesDir, resourceFile)
}
