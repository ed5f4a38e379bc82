package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	JWTSecret        string
	ContactsFile     string
	OpenRouterAPIKey string
	OpenRouterAPIURL string
	ChatModel        string
	AllowedOrigin    string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production-min-32-chars"),
		ContactsFile:     getEnv("CONTACTS_FILE", "./data/contacts.json"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterAPIURL: getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		ChatModel:        getEnv("CHAT_MODEL", "nousresearch/hermes-3-llama-3.1-405b:free"),
		AllowedOrigin:    getEnv("ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
