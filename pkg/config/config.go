package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OpenRouter OpenRouterConfig
	Chat       ChatConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Referer string
	Title   string
	Timeout time.Duration
}

// ChatConfig bounds the context assembled for one chat turn.
type ChatConfig struct {
	HistoryLimit  int
	JourneyLimit  int
	ExcerptLength int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	llmTimeout, _ := strconv.Atoi(getEnv("OPENROUTER_TIMEOUT", "120"))
	historyLimit, _ := strconv.Atoi(getEnv("CHAT_HISTORY_LIMIT", "20"))
	journeyLimit, _ := strconv.Atoi(getEnv("CHAT_JOURNEY_LIMIT", "5"))
	excerptLength, _ := strconv.Atoi(getEnv("CHAT_EXCERPT_LENGTH", "500"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "prisma_ai"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:   getEnv("OPENROUTER_MODEL", "google/gemini-2.5-flash"),
			Referer: getEnv("OPENROUTER_REFERER", "https://prisma-clarity.lovable.app"),
			Title:   getEnv("OPENROUTER_TITLE", "Prisma AI"),
			Timeout: time.Duration(llmTimeout) * time.Second,
		},
		Chat: ChatConfig{
			HistoryLimit:  historyLimit,
			JourneyLimit:  journeyLimit,
			ExcerptLength: excerptLength,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
