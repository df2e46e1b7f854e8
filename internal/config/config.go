// Package config собирает настройки приложения из переменных окружения.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Значения по умолчанию.
const (
	DefaultSourceURL   = "https://www.govtrack.us/api/v2/role?current=true&role_type=representative&limit=438"
	DefaultOutputDir   = "."
	DefaultOutputFile  = "step1.csv"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultSchedule    = "0 6 * * *"
)

// Config — настройки приложения.
//
// Пустые DatabaseURL, RabbitMQURL и PushgatewayURL отключают
// соответствующую интеграцию.
type Config struct {
	// SourceURL — адрес API со списком членов Палаты.
	SourceURL string

	// OutputDir — директория, куда пишется CSV.
	OutputDir string

	// OutputFile — имя CSV файла.
	OutputFile string

	// HTTPTimeout — таймаут запроса к API.
	HTTPTimeout time.Duration

	// Schedule — cron-выражение для команды schedule.
	Schedule string

	// DatabaseURL — DSN Postgres для команды load.
	DatabaseURL string

	// RabbitMQURL — адрес брокера для событий pipeline.
	RabbitMQURL string

	// PushgatewayURL — адрес Prometheus Pushgateway.
	PushgatewayURL string
}

// Load читает конфигурацию из окружения.
func Load() (*Config, error) {
	cfg := &Config{
		SourceURL:      getEnv("ROSTER_SOURCE_URL", DefaultSourceURL),
		OutputDir:      getEnv("ROSTER_OUTPUT_DIR", DefaultOutputDir),
		OutputFile:     getEnv("ROSTER_OUTPUT_FILE", DefaultOutputFile),
		HTTPTimeout:    DefaultHTTPTimeout,
		Schedule:       getEnv("ROSTER_SCHEDULE", DefaultSchedule),
		DatabaseURL:    os.Getenv("DB_URL"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
	}

	if v := os.Getenv("ROSTER_HTTP_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil || sec <= 0 {
			return nil, fmt.Errorf("invalid ROSTER_HTTP_TIMEOUT_SEC %q", v)
		}
		cfg.HTTPTimeout = time.Duration(sec) * time.Second
	}

	if cfg.OutputFile == "" {
		return nil, fmt.Errorf("ROSTER_OUTPUT_FILE must not be empty")
	}

	return cfg, nil
}

// OutputPath возвращает путь к CSV файлу.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}

// getEnv возвращает значение переменной или default, если она не задана.
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
