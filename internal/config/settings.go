package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ResultsDriverPostgres = "postgres"
	ResultsDriverSQLite   = "sqlite"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Settings struct {
	Port     string
	LogLevel string

	ResultsDriver string
	DatabaseDSN   string
	SQLiteDSN     string

	SessionStore  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	RabbitMQURL      string
	RabbitMQExchange string

	GeminiModel       string
	FeedbackTimeout   time.Duration
	QuestionsPerTable int

	CORSAllowedOrigins []string
}

// LoadSettings reads an optional .env file and then the process environment.
func LoadSettings() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.WithError(err).Warn("Failed to load .env file")
	}

	return Settings{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ResultsDriver: getEnv("RESULTS_DRIVER", ResultsDriverSQLite),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SQLiteDSN:     getEnv("SQLITE_DSN", "file:tabuada.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"),

		SessionStore:  getEnv("SESSION_STORE", SessionStoreMemory),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		SessionTTL:    getDuration("SESSION_TTL", 2*time.Hour),

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", "tabuada.events"),

		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		FeedbackTimeout:   getDuration("FEEDBACK_TIMEOUT", 15*time.Second),
		QuestionsPerTable: getInt("QUESTIONS_PER_TABLE", 5),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid integer for %s, using %d", key, fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid duration for %s, using %s", key, fallback)
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
