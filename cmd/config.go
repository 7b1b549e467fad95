package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	StorageDriver          string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	CartCacheTTL           time.Duration
	KafkaHost              string
	KafkaOrderChangedTopic string
	CartExpirySchedule     string
	CartExpiryAge          time.Duration
	DefaultTaxRate         float64
}

// LoadConfig reads the configuration through getenv, applying defaults for unset
// keys. Malformed durations and numbers are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:               valueOr(getenv("HTTP_PORT"), "8080"),
		StorageDriver:          valueOr(getenv("STORAGE_DRIVER"), StorageMemory),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 valueOr(getenv("DB_PORT"), "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              valueOr(getenv("DB_SSLMODE"), "disable"),
		RedisAddr:              getenv("REDIS_ADDR"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: valueOr(getenv("KAFKA_ORDER_CHANGED_TOPIC"), "order.status.changed"),
		CartExpirySchedule:     getenv("CART_EXPIRY_SCHEDULE"),
	}

	var err error
	cfg.CartCacheTTL, err = parseDuration("CART_CACHE_TTL", getenv("CART_CACHE_TTL"))
	errs := err
	cfg.CartExpiryAge, err = parseDuration("CART_EXPIRY_AGE", getenv("CART_EXPIRY_AGE"))
	errs = errors.Join(errs, err)

	if raw := getenv("DEFAULT_TAX_RATE"); raw != "" {
		cfg.DefaultTaxRate, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("DEFAULT_TAX_RATE: %w", err))
		}
	}

	if cfg.StorageDriver != StorageMemory && cfg.StorageDriver != StoragePostgres {
		errs = errors.Join(errs, fmt.Errorf("STORAGE_DRIVER: unsupported driver %q", cfg.StorageDriver))
	}

	if errs != nil {
		return Config{}, errs
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
