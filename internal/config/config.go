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

// Supported chat transports.
const (
	TransportTelegram = "telegram"
	TransportDiscord  = "discord"
)

// Supported conversation-state backends.
const (
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"
)

type Config struct {
	Token     string
	Transport string

	DatabaseURL string
	DBMaxConns  int32

	StateBackend     string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	StateIdleTimeout time.Duration

	DefaultLocale string
	LogLevel      string
	LogFile       string
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	maxConns, err := getInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	idle, err := time.ParseDuration(getEnv("STATE_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("config: STATE_IDLE_TIMEOUT is not a duration: %w", err)
	}

	cfg := &Config{
		Token:            os.Getenv("BOT_TOKEN"),
		Transport:        strings.ToLower(getEnv("TRANSPORT", TransportTelegram)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBMaxConns:       int32(maxConns),
		StateBackend:     strings.ToLower(getEnv("STATE_BACKEND", StateBackendMemory)),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          redisDB,
		StateIdleTimeout: idle,
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "ru"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:          os.Getenv("LOG_FILE"),
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		cfg.DatabaseURL = dsnFromParts()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: BOT_TOKEN is required")
	}

	switch c.Transport {
	case TransportTelegram, TransportDiscord:
	default:
		return fmt.Errorf("config: TRANSPORT must be %q or %q, got %q", TransportTelegram, TransportDiscord, c.Transport)
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL: missing scheme or host")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("config: DB_MAX_CONNS must be positive")
	}

	switch c.StateBackend {
	case StateBackendMemory, StateBackendRedis:
	default:
		return fmt.Errorf("config: STATE_BACKEND must be %q or %q, got %q", StateBackendMemory, StateBackendRedis, c.StateBackend)
	}
	if c.StateIdleTimeout < 0 {
		return fmt.Errorf("config: STATE_IDLE_TIMEOUT must not be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

// dsnFromParts assembles a PostgreSQL URL from the DB_* variables.
func dsnFromParts() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432"),
		Path:   "/" + getEnv("DB_NAME", "rosterbot"),
	}
	if user := os.Getenv("DB_USER"); user != "" {
		if pass := os.Getenv("DB_PASS"); pass != "" {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	u.RawQuery = url.Values{"sslmode": {getEnv("DB_SSLMODE", "disable")}}.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
