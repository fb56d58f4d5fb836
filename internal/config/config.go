package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Embedding EmbeddingConfig
	Matching  MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Debug       bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout  time.Duration
	PoolMaxConns    int32
	PoolMinConns    int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

type EmbeddingConfig struct {
	// GeminiAPIKey empty means the semantic component is disabled and
	// matching runs lexical-plus-rules only.
	GeminiAPIKey string
	Model        string
}

type MatchingConfig struct {
	// CandidatePoolSize bounds how many recent jobs are pulled for scoring
	// per ranking request.
	CandidatePoolSize int
	CacheTTL          time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		Debug:       boolFromEnv("APP_DEBUG", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:  durationFromEnv("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
		PoolMaxConns:    int32FromEnv("DB_POOL_MAX_CONNS", 10),
		PoolMinConns:    int32FromEnv("DB_POOL_MIN_CONNS", 0),
		MaxConnLifetime: durationFromEnv("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 30*time.Minute),
		MaxConnIdleTime: durationFromEnv("DB_POOL_MAX_CONN_IDLE_SECONDS", 5*time.Minute),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:      req("JWT_SECRET"),
		AccessTokenTTL: durationFromEnv("JWT_ACCESS_TTL_SECONDS", time.Hour),
	}

	cfg.Embedding = EmbeddingConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        opt("GEMINI_EMBED_MODEL"),
	}

	cfg.Matching = MatchingConfig{
		CandidatePoolSize: intFromEnv("MATCH_CANDIDATE_POOL", 1000),
		CacheTTL:          durationFromEnv("MATCH_CACHE_TTL_SECONDS", 5*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func boolFromEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func intFromEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func int32FromEnv(key string, def int32) int32 {
	v := intFromEnv(key, int(def))
	return int32(v)
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
