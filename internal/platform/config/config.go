package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	AdminEmails []string
	SessionTTL  time.Duration
	BcryptCost  int

	DBMaxOpenConns int
	DBMaxIdleConns int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "showcase"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var admins []string
	for _, value := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		value = strings.ToLower(strings.TrimSpace(value))
		if value != "" {
			admins = append(admins, value)
		}
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		AdminEmails: admins,
		SessionTTL:  time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:  envInt("BCRYPT_COST", 12),

		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
