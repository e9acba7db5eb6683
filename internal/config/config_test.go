package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "PORT", "APP_ENV", "NODE_ENV", "APP_LOG_LEVEL", "CORS_ORIGINS",
	"MONGO_URI", "MONGO_DB", "MONGO_HOST", "MONGO_TRANSACTIONS", "DB_USER", "DB_PASS",
	"JWT_SECRET", "JWT_EXP", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "GRPC_HEALTH_PORT",
}

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Production())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "recDB", cfg.MongoDB)
	assert.False(t, cfg.MongoTransactions)
	assert.Equal(t, 24*time.Hour, cfg.JWTExp)
	assert.Len(t, cfg.CORSOrigins, 3)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "recommendation-events", cfg.KafkaTopic)
	assert.Equal(t, "mongodb+srv://cluster0.wwkoz.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0", cfg.MongoURI)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.env")
	content := "JWT_SECRET=file-secret\n" +
		"NODE_ENV=production\n" +
		"PORT=9000\n" +
		"DB_USER=alice\n" +
		"DB_PASS=p@ss\n" +
		"MONGO_TRANSACTIONS=true\n" +
		"JWT_EXP=1h\n" +
		"REDIS_ADDR=localhost:6379\n" +
		"REDIS_DB=2\n" +
		"KAFKA_BROKERS=k1:9092, k2:9092\n" +
		"CORS_ORIGINS=http://a.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv.Load never overrides variables already present in the
	// process, so drop the blanks set by clearEnv for the keys under test.
	for _, k := range []string{"JWT_SECRET", "NODE_ENV", "PORT", "DB_USER", "DB_PASS",
		"MONGO_TRANSACTIONS", "JWT_EXP", "REDIS_ADDR", "REDIS_DB", "KAFKA_BROKERS", "CORS_ORIGINS"} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range configKeys {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.True(t, cfg.Production())
	assert.Equal(t, "9000", cfg.AppPort)
	assert.True(t, cfg.MongoTransactions)
	assert.Equal(t, time.Hour, cfg.JWTExp)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://a.test"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.MongoURI, "mongodb+srv://alice:p%40ss@")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "bad transactions flag", env: map[string]string{"JWT_SECRET": "s", "MONGO_TRANSACTIONS": "maybe"}},
		{name: "bad expiry", env: map[string]string{"JWT_SECRET": "s", "JWT_EXP": "tomorrow"}},
		{name: "bad redis db", env: map[string]string{"JWT_SECRET": "s", "REDIS_DB": "zero"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestAppPort_PrefersAppPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "7000")
	t.Setenv("APP_PORT", "8080")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
}
