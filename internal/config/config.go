// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"moneyflow/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config

	// Currency is the deployment currency. All accounts and transfers use it.
	Currency string

	// TransferThreshold is the maximum transfer amount in minor units.
	TransferThreshold int64

	// BaselineLookbackDays controls how far back account activity is loaded
	// into memory; older activity is collapsed into the baseline balance.
	BaselineLookbackDays int

	// KafkaBrokers lists broker addresses for transfer events. Empty disables
	// event publishing.
	KafkaBrokers []string

	// UseInMemoryStore swaps PostgreSQL for the in-memory store, for local runs.
	UseInMemoryStore bool
}

// LoadConfig loads configuration from environment variables, with a .env file
// as fallback if present. It returns an AppConfig instance or an error if any
// variable is invalid.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // Missing .env is fine; env vars take precedence

	serverPort := getEnv("SERVER_PORT", "8080")

	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	threshold, err := getEnvInt64("TRANSFER_THRESHOLD", 1_000_000)
	if err != nil {
		return nil, err
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("TRANSFER_THRESHOLD must be positive, got %d", threshold)
	}

	lookbackDays, err := getEnvInt("BASELINE_LOOKBACK_DAYS", 10)
	if err != nil {
		return nil, err
	}
	if lookbackDays <= 0 {
		return nil, fmt.Errorf("BASELINE_LOOKBACK_DAYS must be positive, got %d", lookbackDays)
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "moneyflowdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Currency:             getEnv("CURRENCY", "EUR"),
		TransferThreshold:    threshold,
		BaselineLookbackDays: lookbackDays,
		KafkaBrokers:         brokers,
		UseInMemoryStore:     os.Getenv("USE_IN_MEMORY_STORE") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
