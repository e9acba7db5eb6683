// Package config loads the service configuration from an env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

// Config holds all configuration for the application.
type Config struct {
	AppHost     string
	AppPort     string
	Environment string
	LogLevel    string
	CORSOrigins []string

	MongoURI          string
	MongoDB           string
	MongoTransactions bool

	JWTSecret string
	JWTExp    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	GRPCHealthPort string
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// Load reads the env file at path (a missing file is ignored) and builds a
// Config from the resulting environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:     getEnv("APP_HOST", ""),
		AppPort:     getEnv("APP_PORT", getEnv("PORT", "5000")),
		Environment: getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS",
			"http://localhost:5173,"+
				"https://product-recommendation-s-c2392.web.app,"+
				"https://product-recommendation-s-c2392.firebaseapp.com")),

		MongoURI: getEnv("MONGO_URI", ""),
		MongoDB:  getEnv("MONGO_DB", "recDB"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "recommendation-events"),

		GRPCHealthPort: getEnv("GRPC_HEALTH_PORT", ""),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI(getEnv("DB_USER", ""), getEnv("DB_PASS", ""),
			getEnv("MONGO_HOST", "cluster0.wwkoz.mongodb.net"))
	}

	var err error
	if cfg.MongoTransactions, err = strconv.ParseBool(getEnv("MONGO_TRANSACTIONS", "false")); err != nil {
		return nil, fmt.Errorf("MONGO_TRANSACTIONS: %w", err)
	}
	if cfg.JWTExp, err = time.ParseDuration(getEnv("JWT_EXP", "24h")); err != nil {
		return nil, fmt.Errorf("JWT_EXP: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

// atlasURI builds the SRV connection string used by the hosted cluster.
func atlasURI(user, pass, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	if user != "" {
		u.User = url.UserPassword(user, pass)
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
