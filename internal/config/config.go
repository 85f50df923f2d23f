package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	AutoMigrate    bool
	MigrationsDir  string
	GinMode        string
	RatesFile      string
	AdminJWTSecret string
}

// Load reads configuration from the environment. Variables in a .env file
// in the working directory are applied first without overriding values
// already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "fees"),
		DBPassword:     getEnv("DB_PASSWORD", "fees_secret"),
		DBName:         getEnv("DB_NAME", "fees"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:    getEnv("AUTO_MIGRATE", "false") == "true",
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "file://migrations"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		RatesFile:      getEnv("RATES_FILE", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
