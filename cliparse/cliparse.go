package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Database backends
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMongo    = "mongo"
)

// List rendering modes for GET /reviews
const (
	RenderJSON = "json"
	RenderHTML = "html"
)

const (
	defaultPort         = 5000
	defaultDatabaseURL  = "file:reviews.db"
	defaultDatabaseName = "review"
	defaultLandingPath  = "/"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DatabaseName string
	RenderMode   string
	LandingPath  string
	LogLevel     slog.Level
}

// ParseFlags validates flags and fills in env and default values
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("quickly-review", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cfg.DatabaseName, "db-name", "", "Database name (mongo only)")
	fs.StringVar(&cfg.RenderMode, "render", "", "GET /reviews output (json or html)")
	fs.StringVar(&cfg.LandingPath, "landing", "", "Landing page path (/ or /home)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("MONGODB_URI")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = InferDatabaseType(cfg.DatabaseURL)
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMongo:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = envOr("DATABASE_NAME", defaultDatabaseName)
	}

	if cfg.RenderMode == "" {
		cfg.RenderMode = envOr("RENDER_MODE", RenderJSON)
	}
	if cfg.RenderMode != RenderJSON && cfg.RenderMode != RenderHTML {
		return Config{}, fmt.Errorf("render mode must be %q or %q", RenderJSON, RenderHTML)
	}

	if cfg.LandingPath == "" {
		cfg.LandingPath = envOr("LANDING_PATH", defaultLandingPath)
	}
	if cfg.LandingPath != "/" && cfg.LandingPath != "/home" {
		return Config{}, errors.New("landing path must be / or /home")
	}

	if logLevel == "" {
		logLevel = envOr("LOG_LEVEL", "info")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

// InferDatabaseType guesses the backend from the connection string scheme
func InferDatabaseType(url string) string {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DatabaseMongo
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DatabasePostgres
	}
	return DatabaseSQLite
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
