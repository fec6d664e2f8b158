package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// JWT Configuration
	JWTSecret     string
	JWTTTLMinutes int
	// SMTP Configuration (Brevo)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender email (different from SMTP login)
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Email confirmation
	ConfirmTokenTTLHours int
	// Notification worker pool
	NotifyWorkers   int
	NotifyQueueSize int
	// Password hashing
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally, ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		// JWT Configuration
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@jobboard.local"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Email confirmation
		ConfirmTokenTTLHours: getEnvInt("CONFIRM_TOKEN_TTL_HOURS", 48),
		// Notification worker pool
		NotifyWorkers:   getEnvInt("NOTIFY_WORKERS", 4),
		NotifyQueueSize: getEnvInt("NOTIFY_QUEUE_SIZE", 256),
		// Password hashing
		BcryptCost: getEnvInt("BCRYPT_COST", 12),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not be secure.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Email confirmation will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
