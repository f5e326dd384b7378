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
	Keys     APIKeys
	Ai       AIConfig
	Pipeline PipelineConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	OtelEnabled        bool
	OtelEndpoint       string
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type APIKeys struct {
	GoogleGemini string
	JWTSecret    string
}

type AIConfig struct {
	LLMProvider         string // "gemini" or "ollama"
	LLMModel            string
	ClassifierModel     string
	EmbeddingProvider   string // "gemini" or "ollama"
	EmbeddingModel      string
	EmbeddingDimensions int
	OllamaBaseURL       string
}

// PipelineConfig holds the per-stage budgets of a chat turn.
type PipelineConfig struct {
	ClassifyTimeout    time.Duration
	EmbedTimeout       time.Duration
	RetrieveTimeout    time.Duration
	CrisisTimeout      time.Duration
	GenerateTimeout    time.Duration
	PersistTimeout     time.Duration
	CrisisCacheTTL     time.Duration
	TechniqueThreshold float64
	TechniqueCount     int
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			LLMProvider:         getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:            getEnv("LLM_MODEL", "gemini-2.5-flash"),
			ClassifierModel:     getEnv("CLASSIFIER_MODEL", "gemini-2.5-flash"),
			EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingModel:      getEnv("EMBEDDING_MODEL", "gemini-embedding-001"),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 768),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Pipeline: PipelineConfig{
			ClassifyTimeout:    getEnvAsDuration("CLASSIFY_TIMEOUT", 10*time.Second),
			EmbedTimeout:       getEnvAsDuration("EMBED_TIMEOUT", 10*time.Second),
			RetrieveTimeout:    getEnvAsDuration("RETRIEVE_TIMEOUT", 5*time.Second),
			CrisisTimeout:      getEnvAsDuration("CRISIS_TIMEOUT", 5*time.Second),
			GenerateTimeout:    getEnvAsDuration("GENERATE_TIMEOUT", 30*time.Second),
			PersistTimeout:     getEnvAsDuration("PERSIST_TIMEOUT", 5*time.Second),
			CrisisCacheTTL:     getEnvAsDuration("CRISIS_CACHE_TTL", 10*time.Minute),
			TechniqueThreshold: getEnvAsFloat("TECHNIQUE_THRESHOLD", 0.35),
			TechniqueCount:     getEnvAsInt("TECHNIQUE_COUNT", 5),
		},
	}
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("8s", "1500ms").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
