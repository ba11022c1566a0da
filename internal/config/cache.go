package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the status page response cache.  When
// Enabled is false or no Redis client is available, caching is off.
// Methods lists the HTTP methods to cache.  KeyStrategy determines which
// parts of the request contribute to the cache key.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads STATUS_CACHE_* variables.  Caching is disabled
// unless STATUS_CACHE_ENABLED is set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("STATUS_CACHE_ENABLED", false),
		Methods:      parseMethods(envStr("STATUS_CACHE_METHODS", "GET")),
		TTL:          envDur("STATUS_CACHE_TTL", 30*time.Second),
		KeyStrategy:  envStr("STATUS_CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("STATUS_CACHE_PREFIX", "status"),
		MaxBodyBytes: envInt("STATUS_CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
