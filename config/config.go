// Package config provides configuration management for the yard service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Resolver ResolverConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// ResolverConfig holds resolver and topology configuration.
type ResolverConfig struct {
	CacheSize     int
	CacheTTL      time.Duration
	DefaultYardID string
	// SpecialStacks overrides the stack numbers excluded from 40ft pairing.
	// Empty means the built-in defaults.
	SpecialStacks []int
	// StackBands overrides the pairing bands as [lo, hi] pairs.
	// Empty means the built-in defaults.
	StackBands [][2]int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Resolver: ResolverConfig{
			CacheSize:     getEnvInt("CACHE_SIZE", 1000),
			CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
			DefaultYardID: getEnv("DEFAULT_YARD_ID", "main"),
			SpecialStacks: parseIntSlice(os.Getenv("SPECIAL_STACKS")),
			StackBands:    parseBands(os.Getenv("STACK_BANDS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "yard_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIntSlice(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && v > 0 {
			result = append(result, v)
		}
	}
	return result
}

// parseBands parses a band list like "3-29,33-55,61-99" into [lo, hi] pairs.
// Malformed entries are skipped.
func parseBands(s string) [][2]int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([][2]int, 0, len(parts))
	for _, p := range parts {
		bounds := strings.SplitN(strings.TrimSpace(p), "-", 2)
		if len(bounds) != 2 {
			continue
		}
		lo, errLo := strconv.Atoi(strings.TrimSpace(bounds[0]))
		hi, errHi := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if errLo != nil || errHi != nil || lo <= 0 || hi < lo {
			continue
		}
		result = append(result, [2]int{lo, hi})
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
