package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/connection"

	"github.com/joho/godotenv"
)

type Config struct {
	Postgres     connection.PostgresConfig
	RedisAddr    string
	KafkaBroker  string
	Port         string
	JWTSecret    string
	Workers      int
	ComputeAsync bool
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Postgres: connection.PostgresConfig{
			Host:         os.Getenv("DB_HOST"),
			User:         os.Getenv("DB_USER"),
			Password:     os.Getenv("DB_PASSWORD"),
			DBName:       os.Getenv("DB_NAME"),
			Port:         os.Getenv("DB_PORT"),
			SSLMode:      envOr("DB_SSLMODE", "disable"),
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Port:        envOr("PORT", "3000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Workers:     8,
	}

	if v := os.Getenv("PAYROLL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("PAYROLL_WORKERS must be a positive integer, got %q", v)
		}
		cfg.Workers = n
	}

	if v := os.Getenv("PAYROLL_COMPUTE_ASYNC"); v != "" {
		async, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("PAYROLL_COMPUTE_ASYNC must be a boolean, got %q", v)
		}
		cfg.ComputeAsync = async
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
