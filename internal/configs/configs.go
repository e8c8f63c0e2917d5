package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config is built once at process start and passed into the components
// that need it. Page-size bounds and the JWT material are never read from
// the environment anywhere else.
type Config struct {
	AppURL                 string
	ServiceName            string
	DatabaseDSN            string
	JWTSecret              string
	JWTIssuer              string
	JWTAudience            string
	AccessTokenTTLHours    int
	RefreshTokenTTLDays    int
	DefaultPageSize        int
	MaxPageSize            int
	CORSOrigins            []string
	RateLimit              int
	ShutdownTimeoutSeconds int
	SeedData               bool
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		ServiceName:            getEnv("SERVICE_NAME", "task-tracker-api"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasktracker.db"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWTIssuer:              getEnv("JWT_ISSUER", "task-tracker-api"),
		JWTAudience:            getEnv("JWT_AUDIENCE", "task-tracker-clients"),
		AccessTokenTTLHours:    getEnvAsInt("ACCESS_TOKEN_TTL_HOURS", 4),
		RefreshTokenTTLDays:    getEnvAsInt("REFRESH_TOKEN_TTL_DAYS", 7),
		DefaultPageSize:        getEnvAsInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:            getEnvAsInt("MAX_PAGE_SIZE", 100),
		CORSOrigins:            splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		SeedData:               getEnv("SEED_DATA", "false") == "true",
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.AccessTokenTTLHours <= 0 {
		log.Fatal("ACCESS_TOKEN_TTL_HOURS must be greater than 0")
	}
	if cfg.RefreshTokenTTLDays <= 0 {
		log.Fatal("REFRESH_TOKEN_TTL_DAYS must be greater than 0")
	}
	if cfg.DefaultPageSize <= 0 {
		log.Fatal("DEFAULT_PAGE_SIZE must be greater than 0")
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		log.Fatal("MAX_PAGE_SIZE must be at least DEFAULT_PAGE_SIZE")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
