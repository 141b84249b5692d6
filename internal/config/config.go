package config

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything the backend reads from the environment.
// When DATABASE_URL is set the store runs against Postgres; otherwise it
// falls back to an embedded SQLite file.
type Config struct {
	Port        string
	SQLitePath  string
	PostgresDSN string
	GinMode     string
}

func Load() Config {
	return Config{
		Port:        valueOrDefault("PORT", "8080"),
		SQLitePath:  valueOrDefault("SQLITE_PATH", "stackit.db"),
		PostgresDSN: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GinMode:     valueOrDefault("GIN_MODE", "debug"),
	}
}

// UsePostgres reports whether a Postgres DSN was configured.
func (c Config) UsePostgres() bool {
	return c.PostgresDSN != ""
}

func valueOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
