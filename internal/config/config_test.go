package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "SECRET_KEY", "BCRYPT_COST", "STORE_DRIVER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017/producthub", cfg.MongoURI)
	assert.Equal(t, "producthub", cfg.MongoDatabase)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("STORE_DRIVER", "Memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "test", cfg.MongoDatabase)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "cost not a number", key: "BCRYPT_COST", value: "ten"},
		{name: "cost too low", key: "BCRYPT_COST", value: "2"},
		{name: "cost too high", key: "BCRYPT_COST", value: "40"},
		{name: "unknown driver", key: "STORE_DRIVER", value: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", "")
			t.Setenv("STORE_DRIVER", "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseFromURI(t *testing.T) {
	assert.Equal(t, "shop", databaseFromURI("mongodb://localhost:27017/shop?retryWrites=true"))
	assert.Equal(t, "shop", databaseFromURI("mongodb+srv://user:pw@cluster0.example.net/shop"))
	assert.Equal(t, "test", databaseFromURI("mongodb://localhost:27017/"))
}
