package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Content
	ContentDir     string        // directory holding .md article files
	ReloadInterval time.Duration // interval to rescan the content directory (default: 1h)
	DefaultAuthor  string        // author fallback for articles without one

	// Site identity
	SiteTitle       string // ex: "Ops Notebook"
	SiteURL         string // canonical base URL, ex: https://blog.domain.ext
	SiteDescription string // channel description for the feed

	// Presentation policy
	FeedLimit      int // max items in the RSS feed (default: 20)
	RelatedLimit   int // related articles shown per post (default: 3)
	FeaturedLimit  int // featured articles on the home page (default: 4)
	CategoryWeight int // relevance weight for a category match (default: 10)
	TagWeight      int // relevance weight per shared tag (default: 2)
	WordsPerMinute int // reading speed for reading-time estimates (default: 200)

	// Redis page cache (optional, empty addr = cache disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisWarnThreshold  int           // warn after this many attempts
	PageCacheTTL        time.Duration // TTL for cached rendered pages (ex: 1h)

	AllowedHosts []string // optional, restrict access to specific Host headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("QUILL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("QUILL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("QUILL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("QUILL_PRETTY_LOG", true),

		// Content
		ContentDir:     requireEnv("QUILL_CONTENT_DIR"),
		ReloadInterval: mustDuration("QUILL_RELOAD_INTERVAL", time.Hour),
		DefaultAuthor:  getenv("QUILL_DEFAULT_AUTHOR", "editorial team"),

		// Site identity
		SiteTitle:       requireEnv("QUILL_SITE_TITLE"),
		SiteURL:         strings.TrimRight(requireEnv("QUILL_SITE_URL"), "/"),
		SiteDescription: getenv("QUILL_SITE_DESCRIPTION", ""),

		// Presentation policy
		FeedLimit:      getenvInt("QUILL_FEED_LIMIT", 20),
		RelatedLimit:   getenvInt("QUILL_RELATED_LIMIT", 3),
		FeaturedLimit:  getenvInt("QUILL_FEATURED_LIMIT", 4),
		CategoryWeight: getenvInt("QUILL_CATEGORY_WEIGHT", 10),
		TagWeight:      getenvInt("QUILL_TAG_WEIGHT", 2),
		WordsPerMinute: getenvInt("QUILL_WORDS_PER_MINUTE", 200),

		// Redis page cache
		RedisAddr:           getenv("QUILL_REDIS_ADDR", ""),
		RedisUser:           getenv("QUILL_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("QUILL_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("QUILL_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		PageCacheTTL:        mustDuration("QUILL_PAGE_CACHE_TTL", time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("QUILL_ALLOWED_HOSTS", "")),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
