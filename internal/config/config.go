package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Ai       AIConfig
	Store    StoreConfig
}

type AppConfig struct {
	Port               string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// AIConfig describes the model-serving backend. An empty BackendURL is a
// valid state: the chat relay reports it as a configuration error.
type AIConfig struct {
	BackendURL string
	Timeout    time.Duration
}

type StoreConfig struct {
	Timeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Career AI"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "default_secret"),
			AccessTokenTTL: time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 24*60)) * time.Minute,
		},
		Ai: AIConfig{
			BackendURL: getEnv("AI_BACKEND_URL", ""),
			Timeout:    time.Duration(getEnvAsInt("AI_BACKEND_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Store: StoreConfig{
			Timeout: time.Duration(getEnvAsInt("STORE_TIMEOUT_SECONDS", 5)) * time.Second,
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
