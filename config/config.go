package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr      string
	RedisUser      string
	RedisPassword  string
	RedisDB        int
	CacheTTL       time.Duration
	LoginRateLimit int

	CloudinaryURL  string
	GoogleClientID string
	CORSOrigins    []string

	ImportMaxBytes int64
	ImportWorkers  int
	DigestSchedule string
}

const devJWTSecret = "dev-secret-change-me"

// LoadEnv loads .env when present. A missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	LoadEnv()

	cfg := &Config{
		Env:      getEnv("ENV", "production"),
		Port:     getEnv("PORT", "3001"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "yultimate"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 6 * * *"),
	}

	var err error
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = getInt("LOGIN_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.ImportWorkers, err = getInt("IMPORT_WORKERS", 4); err != nil {
		return nil, err
	}
	maxBytes, err := getInt("IMPORT_MAX_BYTES", 5<<20)
	if err != nil {
		return nil, err
	}
	cfg.ImportMaxBytes = int64(maxBytes)

	// The built-in secret is only for an explicit ENV=dev.
	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return nil, fmt.Errorf("JWT_SECRET is required when ENV=%s", cfg.Env)
		}
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "dev")
}

// DSN returns DATABASE_URL or a URL assembled from the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode) + "&TimeZone=UTC",
	}
	return u.String()
}

// DBTarget returns the host and database name the DSN points at, for logging.
func (c *Config) DBTarget() (host, name string) {
	if c.DatabaseURL == "" {
		return c.DBHost, c.DBName
	}
	if u, err := url.Parse(c.DatabaseURL); err == nil && u.Host != "" {
		return u.Hostname(), strings.TrimPrefix(u.Path, "/")
	}
	// key=value form
	for _, field := range strings.Fields(c.DatabaseURL) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch k {
		case "host":
			host = v
		case "dbname":
			name = v
		}
	}
	return host, name
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
