package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Narration cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string
	Debug       bool

	OllamaHost           string
	OllamaModel          string
	NarrationTimeout     time.Duration
	NarrationMaxTokens   int
	NarrationTemperature float64

	NarrationCache     string
	NarrationCacheSize int
	NarrationCacheTTL  time.Duration
	RedisURL           string

	WorldFile   string
	ItemsFile   string
	MetricsAddr string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() *Config {
	_ = godotenv.Load()

	debug := parseBool(getEnv("DEBUG", "false"))
	level := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if debug {
		level = slog.LevelDebug
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    level,
		LogFile:     getEnv("GAME_LOG_FILE", "game.log"),
		Debug:       debug,

		OllamaHost:           getEnv("OLLAMA_HOST", "localhost:11434"),
		OllamaModel:          getEnv("OLLAMA_MODEL", "gemma2"),
		NarrationTimeout:     parseDuration(getEnv("NARRATION_TIMEOUT", ""), 30*time.Second),
		NarrationMaxTokens:   parseInt(getEnv("NARRATION_MAX_TOKENS", ""), 150),
		NarrationTemperature: parseFloat(getEnv("NARRATION_TEMPERATURE", ""), 0.7),

		NarrationCache:     parseCacheBackend(getEnv("NARRATION_CACHE", CacheNone)),
		NarrationCacheSize: parseInt(getEnv("NARRATION_CACHE_SIZE", ""), 128),
		NarrationCacheTTL:  parseDuration(getEnv("NARRATION_CACHE_TTL", ""), 10*time.Minute),
		RedisURL:           getEnv("REDIS_URL", "localhost:6379"),

		WorldFile:   getEnv("WORLD_FILE", ""),
		ItemsFile:   getEnv("ITEMS_FILE", ""),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseCacheBackend(v string) string {
	switch strings.ToLower(v) {
	case CacheMemory:
		return CacheMemory
	case CacheRedis:
		return CacheRedis
	default:
		return CacheNone
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func parseInt(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseFloat(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
