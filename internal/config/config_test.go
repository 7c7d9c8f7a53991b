package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.MongoDB)
	assert.NotEmpty(t, cfg.PhotoBackend)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("MONGODB_URI", "mongodb://db.example.com:27017")
	t.Setenv("MONGODB_DB", "lostfound_test")
	t.Setenv("S3_ENDPOINT", "r2.example.com")
	t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")
	t.Setenv("PHOTO_BACKEND", "local")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "mongodb://db.example.com:27017", cfg.MongoURI)
	assert.Equal(t, "lostfound_test", cfg.MongoDB)
	assert.Equal(t, "r2.example.com", cfg.S3Endpoint)
	assert.Equal(t, "https://cdn.example.com", cfg.S3PublicBaseURL)
	assert.Equal(t, "local", cfg.PhotoBackend)
}

func TestLoadS3UseSSL(t *testing.T) {
	t.Setenv("S3_USE_SSL", "false")
	assert.False(t, Load().S3UseSSL)

	t.Setenv("S3_USE_SSL", "true")
	assert.True(t, Load().S3UseSSL)
}
