package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validMatchModes = []string{"substring", "boundary"}
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	if err := validateAnalysis(c.Analysis); err != nil {
		return fmt.Errorf("analysis configuration error: %w", err)
	}
	if err := validateServer(c.Server); err != nil {
		return fmt.Errorf("server configuration error: %w", err)
	}
	if err := validateStore(c.Store); err != nil {
		return fmt.Errorf("store configuration error: %w", err)
	}
	return nil
}

func validateApp(app AppConfig) error {
	if !slices.Contains(app.SupportedFormats, app.DefaultFormat) {
		return fmt.Errorf("invalid default format: %s", app.DefaultFormat)
	}
	if app.LogLevel != "" && !slices.Contains(validLogLevels, app.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of %v)", app.LogLevel, validLogLevels)
	}
	if app.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}
	return nil
}

func validateAnalysis(a AnalysisConfig) error {
	if a.MinMatchPercentage < 0 || a.MinMatchPercentage > 100 {
		return fmt.Errorf("minMatchPercentage must be between 0 and 100, got %v", a.MinMatchPercentage)
	}
	if a.RecommendationLimit < 0 {
		return fmt.Errorf("recommendationLimit cannot be negative")
	}
	if a.MatchMode != "" && !slices.Contains(validMatchModes, a.MatchMode) {
		return fmt.Errorf("invalid match mode: %s (must be one of %v)", a.MatchMode, validMatchModes)
	}
	if a.WatchTaxonomy && a.TaxonomyFile == "" {
		return fmt.Errorf("watchTaxonomy requires taxonomyFile")
	}
	return nil
}

func validateServer(s ServerConfig) error {
	if s.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if s.RateLimit.Enabled {
		if s.RateLimit.RequestsPerMin <= 0 {
			return fmt.Errorf("rate limit requestsPerMin must be positive")
		}
		if s.RateLimit.BurstCapacity <= 0 {
			return fmt.Errorf("rate limit burstCapacity must be positive")
		}
		if !s.RateLimit.ByIP && !s.RateLimit.ByAPIKey {
			return fmt.Errorf("rate limiting enabled but neither byIP nor byAPIKey is set")
		}
	}
	return nil
}

func validateStore(s StoreConfig) error {
	if s.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	if s.MaxEntries <= 0 {
		return fmt.Errorf("maxEntries must be positive")
	}
	if s.Redis.Enabled && s.Redis.Addr == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}
	return validateCircuitBreaker(s.CircuitBreaker)
}

func validateCircuitBreaker(cb CircuitBreakerConfig) error {
	if !cb.Enabled {
		return nil
	}
	if cb.FailureThreshold <= 0 || cb.FailureThreshold > 1 {
		return fmt.Errorf("circuit breaker failureThreshold must be in (0, 1], got %v", cb.FailureThreshold)
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("circuit breaker timeout must be positive")
	}
	return nil
}
