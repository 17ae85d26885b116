package config

import (
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort       string
	AllowedOrigins   string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	DefaultPassword  string
	S3Bucket         string
	S3Region         string
	S3PublicBaseURL  string
)

// Load reads the .env file if present and populates the configuration
// variables from the environment
func Load() {
	// Missing .env is fine, variables may come from the environment directly
	_ = godotenv.Load()

	ServerPort = getEnv("SERVER_PORT", "8080")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "bachelor_fantasy")
	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
	S3Bucket = getEnv("S3_BUCKET", "bachelor-fantasy-photos")
	S3Region = getEnv("S3_REGION", "us-east-1")
	S3PublicBaseURL = getEnv("S3_PUBLIC_BASE_URL", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
