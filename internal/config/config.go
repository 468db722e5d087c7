package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища больниц
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	StoreBackend       string `env:"STORE_BACKEND" envDefault:"postgres"`
	DatabaseURL        string `env:"DATABASE_URL"`
	MigrationsDir      string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	FirestoreProjectID string `env:"FIRESTORE_PROJECT_ID"`
	HTTPPort           string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	// Ограничение ожидания любой операции с хранилищем
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"10m"`

	// Журнал бронирований
	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"3"`
	EventBaseDelay  time.Duration `env:"EVENT_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Ограничение частоты бронирований с одного IP
	ReservationRatePerSec float64 `env:"RESERVATION_RATE_PER_SEC" envDefault:"1"`
	ReservationBurst      int     `env:"RESERVATION_BURST" envDefault:"5"`

	RoutingServiceURL string `env:"ROUTING_SERVICE_URL" envDefault:"https://router.project-osrm.org/route/v1"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		StoreBackend:           strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		FirestoreProjectID:     os.Getenv("FIRESTORE_PROJECT_ID"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		StoreTimeout:           getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		CacheTTL:               getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		IdempotencyTTL:         getEnvAsDuration("IDEMPOTENCY_TTL", 10*time.Minute),
		EventMaxRetries:        getEnvAsInt("EVENT_MAX_RETRIES", 3),
		EventBaseDelay:         getEnvAsDuration("EVENT_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		ReservationRatePerSec:  getEnvAsFloat("RESERVATION_RATE_PER_SEC", 1),
		ReservationBurst:       getEnvAsInt("RESERVATION_BURST", 5),
		MigrationsDir:          getEnv("MIGRATIONS_DIR", "migrations"),
		RoutingServiceURL:      getEnv("ROUTING_SERVICE_URL", "https://router.project-osrm.org/route/v1"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case BackendFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID environment variable is required")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
