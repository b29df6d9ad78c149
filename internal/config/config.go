package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Session backends.
const (
	SessionJWT   = "jwt"
	SessionRedis = "redis"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins []string

	JWTSecret      string
	JWTIssuer      string
	SessionTTL     time.Duration
	SessionBackend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	LogoURLTTL  time.Duration
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CORSOrigins:    parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:      fallback(os.Getenv("JWT_ISSUER"), "techjobbkk"),
		SessionTTL:     minutes(os.Getenv("SESSION_TTL_MINUTES"), 60),
		SessionBackend: strings.ToLower(fallback(os.Getenv("SESSION_BACKEND"), SessionJWT)),
		RedisAddr:      fallback(os.Getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:       fallback(os.Getenv("S3_REGION"), "us-east-1"),
		S3Endpoint:     strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3AccessKey:    strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:    strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		LogoURLTTL:     minutes(os.Getenv("LOGO_URL_TTL_MINUTES"), 15),
	}

	if db, err := strconv.Atoi(fallback(os.Getenv("REDIS_DB"), "0")); err == nil && db >= 0 {
		cfg.RedisDB = db
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	switch cfg.SessionBackend {
	case SessionJWT:
		if cfg.JWTSecret == "" {
			return Config{}, errors.New("JWT_SECRET is required")
		}
	case SessionRedis:
	default:
		return Config{}, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", SessionJWT, SessionRedis, cfg.SessionBackend)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// MediaEnabled reports whether logo links should be presigned.
func (c Config) MediaEnabled() bool {
	return c.S3Bucket != ""
}

// InMemory reports whether the server should run against the in-process store.
func (c Config) InMemory() bool {
	return c.DatabaseURL == "memory"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func minutes(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n) * time.Minute
	}
	return time.Duration(def) * time.Minute
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
