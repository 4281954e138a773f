package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/taskmaster-api/internal/constants"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// LogFormat is "console" or "json"; empty picks by GinMode
	LogFormat string

	DBType     string // sqlite, mysql, postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SeedData   bool

	SessionStore  string // cookie, redis
	SessionSecret string
	RedisHost     string
	RedisPort     string

	AIProvider   string // gemini, openai
	AIModel      string
	OpenAIAPIKey string
	GeminiAPIKey string

	UsernameSuffix string
	EmailDomain    string
	Timezone       string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", ""),
		DBType:         strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "taskuser"),
		DBPassword:     getEnv("DB_PASSWORD", "taskpassword"),
		DBName:         getEnv("DB_NAME", "file:taskmaster?mode=memory&cache=shared"),
		SeedData:       getEnvAsBool("SEED_DATA", true),
		SessionStore:   strings.ToLower(getEnv("SESSION_STORE", "cookie")),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		AIProvider:     strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		AIModel:        getEnv("AI_MODEL", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		UsernameSuffix: getEnv("USERNAME_SUFFIX", constants.DefaultUsernameSuffix),
		EmailDomain:    getEnv("EMAIL_DOMAIN", constants.DefaultEmailDomain),
		Timezone:       getEnv("TIMEZONE", "Local"),
	}

	switch cfg.SessionStore {
	case "cookie", "redis":
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.SessionStore)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured TIMEZONE.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// RedisAddr returns host:port for the session store.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
