package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads the service configuration from the environment, consulting a
// .env file first when one is present. Values are fixed for the process
// lifetime; callers pass the returned Config by value into constructors.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:   getEnv("JWT_ISSUER", "usersvc"),
		// Issued tokens default to a one-week lifetime.
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 7*24*60),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
