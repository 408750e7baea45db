// Package config collects all environment-driven settings in one place.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string

	// Gemini is consumed through its OpenAI-compatible endpoint.
	GeminiAPIKey  string
	GeminiBaseURL string
	ChatModel     string
	QuizModel     string

	// Demo gating
	DemoChatLimit     int
	DemoQuestionCount int
	// "local" scores answers client-side only; "session" also keeps an
	// answer log and rescales the score from the log.
	DemoQuizMode string

	ResendAPIKey string
	EmailFrom    string
	AdminEmail   string

	KlaviyoAPIKey         string
	KlaviyoWaitlistListID string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "redseal"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		ChatModel:     getEnv("DEMO_CHAT_MODEL", "gemini-2.5-flash"),
		QuizModel:     getEnv("DEMO_QUIZ_MODEL", "gemini-2.0-flash"),

		DemoChatLimit:     getEnvInt("DEMO_CHAT_LIMIT", 5),
		DemoQuestionCount: getEnvInt("DEMO_QUESTION_COUNT", 3),
		DemoQuizMode:      getEnv("DEMO_QUIZ_MODE", "local"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnv("EMAIL_FROM", "Red Seal Hub <noreply@send.redsealhub.com>"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),

		KlaviyoAPIKey:         os.Getenv("KLAVIYO_PRIVATE_API_KEY"),
		KlaviyoWaitlistListID: os.Getenv("KLAVIYO_WAITLIST_LIST_ID"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
