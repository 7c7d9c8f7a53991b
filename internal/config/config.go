package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	MongoURI        string
	MongoDB         string
	S3Endpoint      string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PublicBaseURL string
	PhotoBackend    string
	PhotoPath       string
	SecretKey       string
	LogLevel        string
	LogFile         string
}

func Load() *Config {
	// A .env file is optional; deployments usually set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGODB_DB", "lost_and_found"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:        getEnv("S3_BUCKET", "lostfound"),
		S3UseSSL:        getEnv("S3_USE_SSL", "true") != "false",
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		PhotoBackend:    getEnv("PHOTO_BACKEND", "s3"),
		PhotoPath:       getEnv("PHOTO_LOCAL_PATH", "/data/photos"),
		SecretKey:       getEnv("SECRET_KEY", "dev-secret-key-change-me"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
