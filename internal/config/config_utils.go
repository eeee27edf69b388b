package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// applyFallbacks applies environment variable fallbacks
func (c *Config) applyFallbacks() {
	c.applyServerAPIKeyFallbacks()
	c.applyStoreDefaults()
	c.applyObservabilityDefaults()
}

// applyServerAPIKeyFallbacks applies API key fallbacks from environment variables
func (c *Config) applyServerAPIKeyFallbacks() {
	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("RESUMATCH_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = splitList(apiKeysEnv)
		}
	}
}

// applyStoreDefaults fills in store values that cannot be zero
func (c *Config) applyStoreDefaults() {
	if c.Store.CleanupInterval <= 0 && c.Store.TTL > 0 {
		c.Store.CleanupInterval = c.Store.TTL
	}
	if c.Store.Redis.Enabled && c.Store.Redis.KeyPrefix == "" {
		c.Store.Redis.KeyPrefix = "resumatch:report:"
	}
}

// applyObservabilityDefaults applies default observability configuration values
func (c *Config) applyObservabilityDefaults() {
	if c.Observability.ServiceInstance == "" {
		c.Observability.ServiceInstance = generateServiceInstanceID(c.Observability.ServiceName)
	}
}

// generateServiceInstanceID generates a unique service instance ID
func generateServiceInstanceID(serviceName string) string {
	// Try to get hostname, fallback to default
	if hostname, err := os.Hostname(); err == nil {
		return fmt.Sprintf("%s-%s", serviceName, hostname)
	}
	return fmt.Sprintf("%s-1", serviceName)
}

// splitList splits a comma-separated value and drops empty items
func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// sensitiveEnv reports whether an environment variable must be masked in logs
func sensitiveEnv(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "key") || strings.Contains(lower, "password")
}

// loggedEnvVars are reported at startup when set
var loggedEnvVars = []string{
	"RESUMATCH_SERVER_PORT",
	"RESUMATCH_SERVER_HOST",
	"RESUMATCH_SERVER_APIKEYS",
	"RESUMATCH_APP_LOGLEVEL",
	"RESUMATCH_ANALYSIS_MATCHMODE",
	"RESUMATCH_ANALYSIS_TAXONOMYFILE",
	"RESUMATCH_STORE_REDIS_ENABLED",
	"RESUMATCH_STORE_REDIS_ADDR",
	"RESUMATCH_STORE_REDIS_PASSWORD",
}

// logConfigurationSources logs where configuration came from and the values
// that shape a run. Secrets are masked.
func (c *Config) logConfigurationSources(configFileUsed string) {
	if configFileUsed == "" {
		configFileUsed = "none (defaults and environment)"
	}
	log.Printf("[CONFIG] Config file: %s", configFileUsed)

	for _, name := range loggedEnvVars {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if sensitiveEnv(name) {
			value = "***MASKED***"
		}
		log.Printf("[CONFIG] Env %s=%s", name, value)
	}

	auth := "disabled"
	if n := len(c.Server.APIKeys); n > 0 {
		auth = fmt.Sprintf("%d key(s)", n)
	}
	taxonomy := "built-in"
	if c.Analysis.TaxonomyFile != "" {
		taxonomy = fmt.Sprintf("%s (watch: %t)", c.Analysis.TaxonomyFile, c.Analysis.WatchTaxonomy)
	}

	log.Printf("[CONFIG] server=%s:%s auth=%s log_level=%s", c.Server.Host, c.Server.Port, auth, c.App.LogLevel)
	log.Printf("[CONFIG] match_mode=%s min_match=%.1f taxonomy=%s", c.Analysis.MatchMode, c.Analysis.MinMatchPercentage, taxonomy)
	log.Printf("[CONFIG] redis=%t observability=%t", c.Store.Redis.Enabled, c.Observability.Enabled)
}
