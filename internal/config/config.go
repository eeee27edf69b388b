package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "RESUMATCH"

// Config holds all application configuration. Environment variables
// (RESUMATCH_SERVER_PORT and so on) override the config file, which
// overrides the defaults.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Analysis      AnalysisConfig      `mapstructure:"analysis"`
	Server        ServerConfig        `mapstructure:"server"`
	Store         StoreConfig         `mapstructure:"store"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// AnalysisConfig tunes skill extraction and job matching
type AnalysisConfig struct {
	MinMatchPercentage  float64       `mapstructure:"minMatchPercentage"`  // Jobs scoring below this are dropped
	RecommendationLimit int           `mapstructure:"recommendationLimit"` // Top-N jobs for recommendations
	MatchMode           string        `mapstructure:"matchMode"`           // "substring" or "boundary"
	TaxonomyFile        string        `mapstructure:"taxonomyFile"`        // Optional YAML taxonomy override
	WatchTaxonomy       bool          `mapstructure:"watchTaxonomy"`       // Reload the taxonomy file on change
	WatchDebounce       time.Duration `mapstructure:"watchDebounce"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"` // Valid API keys for authentication

	// Uploads
	UploadDir   string `mapstructure:"uploadDir"`   // Where uploaded résumés are written
	KeepUploads bool   `mapstructure:"keepUploads"` // Keep files after analysis

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`        // Enable/disable rate limiting
	RequestsPerMin int           `mapstructure:"requestsPerMin"` // Requests allowed per minute
	BurstCapacity  int           `mapstructure:"burstCapacity"`  // Burst capacity for token bucket
	ByIP           bool          `mapstructure:"byIP"`           // Enable per-IP rate limiting
	ByAPIKey       bool          `mapstructure:"byAPIKey"`       // Enable per-API-key rate limiting
	Window         time.Duration `mapstructure:"window"`         // Rate limiting window duration
}

// StoreConfig holds configuration for the analysis result store
type StoreConfig struct {
	TTL             time.Duration        `mapstructure:"ttl"`             // How long a report can be fetched
	MaxEntries      int                  `mapstructure:"maxEntries"`      // In-memory cap; oldest evicted first
	CleanupInterval time.Duration        `mapstructure:"cleanupInterval"` // Sweep period for expired entries
	Redis           RedisConfig          `mapstructure:"redis"`
	CircuitBreaker  CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// RedisConfig holds the optional shared result store
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	KeyPrefix    string        `mapstructure:"keyPrefix"`
	DialTimeout  time.Duration `mapstructure:"dialTimeout"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

// CircuitBreakerConfig represents circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`          // Whether circuit breaker is enabled
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed when half-open
	Interval         time.Duration `mapstructure:"interval"`         // Interval to clear counts
	Timeout          time.Duration `mapstructure:"timeout"`          // Timeout for half-open to open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Minimum requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio threshold (0.0-1.0)
}

// LoadConfig loads configuration from defaults, an optional config.yaml in
// the standard search paths, and RESUMATCH_* environment variables.
func LoadConfig() (*Config, error) {
	log.Println("[CONFIG] Loading configuration (search paths: /etc/resumatch/, $HOME/.resumatch, .)")
	return load(newViper(""))
}

// LoadConfigFile loads configuration from an explicit file path. The file
// must exist.
func LoadConfigFile(path string) (*Config, error) {
	log.Printf("[CONFIG] Loading configuration from %s", path)
	return load(newViper(path))
}

// newViper returns a viper instance with defaults and environment handling
// applied. An empty configFile searches the standard paths for config.yaml.
func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		return v
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/resumatch/")
	v.AddConfigPath("$HOME/.resumatch")
	v.AddConfigPath(".")
	return v
}

func load(v *viper.Viper) (*Config, error) {
	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileUsed = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyFallbacks()
	cfg.logConfigurationSources(configFileUsed)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
