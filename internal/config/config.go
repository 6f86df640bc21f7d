package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AppEnv          string
	Debug           bool
	Version         string
	DefaultLanguage string

	BotToken   string
	TeamChatID int64

	OpenAIKey  string
	TextModel  string
	ImageModel string

	DataDir         string
	MongoDBURI      string
	MongoDBDatabase string

	SentryDSN string
	Port      string

	// DailyPromptHour is the local hour (0-23) at which the daily prompt is
	// posted automatically; -1 disables the scheduler.
	DailyPromptHour int
}

// LoadConfig loads configuration from environment variables.
// It attempts to load a .env file if present but prioritizes
// actual environment variables set in the system (e.g., by Docker).
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))

	teamChatIDStr := getEnv("TEAM_CHAT_ID", "")
	teamChatID, err := strconv.ParseInt(teamChatIDStr, 10, 64)
	if err != nil && teamChatIDStr != "" {
		return nil, fmt.Errorf("invalid TEAM_CHAT_ID: %w", err)
	}

	dailyHour := -1
	if hourStr := getEnv("DAILY_PROMPT_HOUR", ""); hourStr != "" {
		dailyHour, err = strconv.Atoi(hourStr)
		if err != nil || dailyHour < 0 || dailyHour > 23 {
			return nil, fmt.Errorf("invalid DAILY_PROMPT_HOUR %q: must be 0-23", hourStr)
		}
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Debug:           debug,
		Version:         getEnv("VERSION", "dev"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		BotToken:        getEnv("TELEGRAM_BOT_TOKEN", ""),
		TeamChatID:      teamChatID,
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		TextModel:       getEnv("OPENAI_TEXT_MODEL", "gpt-4o"),
		ImageModel:      getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		DataDir:         getEnv("DATA_DIR", "data"),
		MongoDBURI:      getEnv("MONGODB_URI", ""),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", "linkpulse"),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		Port:            getEnv("PORT", "3000"),
		DailyPromptHour: dailyHour,
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.TeamChatID == 0 {
		return nil, fmt.Errorf("TEAM_CHAT_ID is required")
	}
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.SentryDSN == "" {
		log.Println("Warning: SENTRY_DSN is not set. Error tracking disabled.")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
