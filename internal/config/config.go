package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Places API Config
	PlacesURL             string        `env:"PLACES_API_URL"`
	PlacesAPIKey          string        `env:"PLACES_API_KEY"`
	PlacesTimeout         time.Duration `env:"PLACES_TIMEOUT" envDefault:"5s"`
	PlacesRateLimitPerSec float64       `env:"PLACES_RATE_LIMIT_PER_SEC" envDefault:"1"`
	PlacesSelectionPolicy string        `env:"PLACES_SELECTION_POLICY" envDefault:"first"`
	AcceptedCategories    []string      `env:"ACCEPTED_CATEGORIES"`

	// Dispatcher (webhook) Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// Policy Config - пороги фильтра позиции и анти-спам правила
	AccuracyCeilingMeters  float64       `env:"ACCURACY_CEILING_METERS" envDefault:"50"`
	SpeedThresholdMps      float64       `env:"SPEED_THRESHOLD_MPS" envDefault:"2"`
	SignificantMoveMeters  float64       `env:"SIGNIFICANT_MOVE_METERS" envDefault:"50"`
	MinStayDuration        time.Duration `env:"MIN_STAY_DURATION" envDefault:"5m"`
	MinSampleInterval      time.Duration `env:"MIN_SAMPLE_INTERVAL" envDefault:"30s"`
	FrequentVisitThreshold int           `env:"FREQUENT_VISIT_THRESHOLD" envDefault:"3"`
	VenueCooldown          time.Duration `env:"VENUE_COOLDOWN" envDefault:"24h"`
	GlobalCooldown         time.Duration `env:"GLOBAL_COOLDOWN" envDefault:"1h"`
	MaxDailyNotifications  int           `env:"MAX_DAILY_NOTIFICATIONS" envDefault:"5"`
	ExclusionRadiusMeters  float64       `env:"EXCLUSION_RADIUS_METERS" envDefault:"50"`
	Timezone               string        `env:"TIMEZONE" envDefault:"Local"`

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
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		PlacesURL:              os.Getenv("PLACES_API_URL"),
		PlacesAPIKey:           os.Getenv("PLACES_API_KEY"),
		PlacesTimeout:          getEnvAsDuration("PLACES_TIMEOUT", 5*time.Second),
		PlacesRateLimitPerSec:  getEnvAsFloat("PLACES_RATE_LIMIT_PER_SEC", 1),
		PlacesSelectionPolicy:  getEnv("PLACES_SELECTION_POLICY", "first"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
		AccuracyCeilingMeters:  getEnvAsFloat("ACCURACY_CEILING_METERS", 50),
		SpeedThresholdMps:      getEnvAsFloat("SPEED_THRESHOLD_MPS", 2),
		SignificantMoveMeters:  getEnvAsFloat("SIGNIFICANT_MOVE_METERS", 50),
		MinStayDuration:        getEnvAsDuration("MIN_STAY_DURATION", 5*time.Minute),
		MinSampleInterval:      getEnvAsDuration("MIN_SAMPLE_INTERVAL", 30*time.Second),
		FrequentVisitThreshold: getEnvAsInt("FREQUENT_VISIT_THRESHOLD", 3),
		VenueCooldown:          getEnvAsDuration("VENUE_COOLDOWN", 24*time.Hour),
		GlobalCooldown:         getEnvAsDuration("GLOBAL_COOLDOWN", time.Hour),
		MaxDailyNotifications:  getEnvAsInt("MAX_DAILY_NOTIFICATIONS", 5),
		ExclusionRadiusMeters:  getEnvAsFloat("EXCLUSION_RADIUS_METERS", 50),
		Timezone:               getEnv("TIMEZONE", "Local"),
	}

	// Загрузка списка принимаемых категорий заведений
	cfg.AcceptedCategories = getEnvAsList("ACCEPTED_CATEGORIES", []string{"restaurant", "cafe", "bar"})

	// Загрузка API ключей
	cfg.APIKeys = getEnvAsList("API_KEYS", nil)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.PlacesSelectionPolicy != "first" && cfg.PlacesSelectionPolicy != "likelihood" {
		return nil, fmt.Errorf("PLACES_SELECTION_POLICY must be 'first' or 'likelihood', got %q", cfg.PlacesSelectionPolicy)
	}

	return cfg, nil
}

// Location возвращает таймзону, в которой считается локальная полночь для дневного счетчика
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "Local" || c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора таймзоны %q: %w", c.Timezone, err)
	}
	return loc, nil
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
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

// getEnvAsList возвращает значение переменной окружения как список строк, разделенных запятыми
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
