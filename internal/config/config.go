package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string
	Env  string // development or production, drives logger config

	// DBPath is the SQLite file backing the state slots. Empty means
	// in-memory only (nothing survives a restart).
	DBPath string

	// PaymentDelay is the simulated gateway latency.
	PaymentDelay time.Duration

	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		Env:             getenv("APP_ENV", "development"),
		DBPath:          getenv("STOREFRONT_DB", "storefront.db"),
		PaymentDelay:    parseDuration(getenv("PAYMENT_DELAY", "2500ms"), 2500*time.Millisecond),
		ShutdownTimeout: parseDuration(getenv("SHUTDOWN_TIMEOUT", "5s"), 5*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
