package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Chatbot   ChatbotConfig
	LLM       LLMConfig
	OpenAI    OpenAIConfig
	GigaChat  GigaChatConfig
	Database  DatabaseConfig
	Documents DocumentsConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

type LoggerConfig struct {
	Level string
}

// ChatbotConfig drives prompt composition and the grounded-answer call.
type ChatbotConfig struct {
	Model            string
	MaxHistoryLength int
	Temperature      float64
	MaxTokens        int
}

// LLMConfig selects the completion backend: "openai" (any
// OpenAI-compatible endpoint, including local models) or "gigachat".
type LLMConfig struct {
	Provider string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DocumentsConfig selects the corpus backend: "memory" (built-in seed)
// or "postgres".
type DocumentsConfig struct {
	Backend string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for Docker/K8s.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true"

	maxHistory, err := strconv.Atoi(getEnv("CHATBOT_MAX_HISTORY_LENGTH", "10"))
	if err != nil || maxHistory < 1 {
		maxHistory = 10
	}
	temperature, err := strconv.ParseFloat(getEnv("CHATBOT_TEMPERATURE", "0.7"), 64)
	if err != nil || temperature < 0 || temperature > 2 {
		temperature = 0.7
	}
	maxTokens, err := strconv.Atoi(getEnv("CHATBOT_MAX_TOKENS", "1000"))
	if err != nil || maxTokens <= 0 {
		maxTokens = 1000
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Chatbot: ChatbotConfig{
			Model:            getEnv("CHATBOT_MODEL", "gpt-3.5-turbo"),
			MaxHistoryLength: maxHistory,
			Temperature:      temperature,
			MaxTokens:        maxTokens,
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "openai"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "legal_chatbot"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Documents: DocumentsConfig{
			Backend: getEnv("DOCUMENTS_BACKEND", "memory"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
