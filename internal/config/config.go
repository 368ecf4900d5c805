package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config is built once at startup and shared read-only afterwards.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	SecretKey     string
	BcryptCost    int
	StoreDriver   string
}

// Load reads the process environment. Call godotenv.Load before it if a
// .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017/producthub"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		BcryptCost:  10,
	}

	cfg.MongoDatabase = getEnv("MONGO_DB", databaseFromURI(cfg.MongoURI))

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return nil, errors.New("STORE_DRIVER must be one of: mongo, memory")
	}

	if cfg.SecretKey == "" {
		slog.Warn("SECRET_KEY is not set, tokens will be signed with an empty key")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// databaseFromURI returns the database named in the URI path, or "test"
// which is what the driver ecosystem falls back to.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "test"
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "test"
	}
	return name
}
