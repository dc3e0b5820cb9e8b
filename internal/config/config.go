// Package config loads service configuration from the environment with an
// optional YAML file underneath. Environment variables always win.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported LLM providers.
const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Store backends.
const (
	StoreMemory  = "memory"
	StoreSurreal = "surrealdb"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	ListenAddr string
	EnableCORS bool

	// Storage backend: "memory" (default) or "surrealdb"
	StoreBackend string

	// SurrealDB connection (only used with the surrealdb backend)
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Generative augmentation: "none" disables it, leaving the deterministic
	// fallback replies in place.
	LLMProvider     string
	LLMModel        string
	OllamaHost      string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors the YAML config file shape.
type fileConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	EnableCORS   *bool  `yaml:"enable_cors"`
	StoreBackend string `yaml:"store_backend"`

	SurrealDB struct {
		URL       string `yaml:"url"`
		Namespace string `yaml:"namespace"`
		Database  string `yaml:"database"`
		User      string `yaml:"user"`
		Pass      string `yaml:"pass"`
		AuthLevel string `yaml:"auth_level"`
	} `yaml:"surrealdb"`

	LLM struct {
		Provider   string `yaml:"provider"`
		Model      string `yaml:"model"`
		OllamaHost string `yaml:"ollama_host"`
	} `yaml:"llm"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from environment variables. If BUDDY_CONFIG_FILE
// points at a YAML file its values fill in where the environment is silent.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   getEnv("BUDDY_LISTEN_ADDR", ":8000"),
		EnableCORS:   getEnv("BUDDY_ENABLE_CORS", "true") == "true",
		StoreBackend: getEnv("BUDDY_STORE_BACKEND", StoreMemory),

		SurrealDBURL:       getEnv("BUDDY_SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("BUDDY_SURREALDB_NAMESPACE", "buddy"),
		SurrealDBDatabase:  getEnv("BUDDY_SURREALDB_DATABASE", "diary"),
		SurrealDBUser:      getEnv("BUDDY_SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("BUDDY_SURREALDB_PASS", "root"),
		SurrealDBAuthLevel: getEnv("BUDDY_SURREALDB_AUTH_LEVEL", "root"),

		LLMProvider:     getEnv("BUDDY_LLM_PROVIDER", ProviderNone),
		LLMModel:        getEnv("BUDDY_LLM_MODEL", "llama3.2"),
		OllamaHost:      getEnv("BUDDY_OLLAMA_HOST", "http://localhost:11434"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		LogFile:  getEnv("BUDDY_LOG_FILE", "/tmp/buddy.log"),
		LogLevel: parseLogLevel(getEnv("BUDDY_LOG_LEVEL", "INFO")),
	}

	if path := os.Getenv("BUDDY_CONFIG_FILE"); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// mergeFile overlays file values onto cfg for fields still at their env
// defaults. Environment variables take precedence over the file.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	overlay := func(envKey string, dst *string, val string) {
		if val != "" && os.Getenv(envKey) == "" {
			*dst = val
		}
	}

	overlay("BUDDY_LISTEN_ADDR", &cfg.ListenAddr, fc.ListenAddr)
	overlay("BUDDY_STORE_BACKEND", &cfg.StoreBackend, fc.StoreBackend)
	overlay("BUDDY_SURREALDB_URL", &cfg.SurrealDBURL, fc.SurrealDB.URL)
	overlay("BUDDY_SURREALDB_NAMESPACE", &cfg.SurrealDBNamespace, fc.SurrealDB.Namespace)
	overlay("BUDDY_SURREALDB_DATABASE", &cfg.SurrealDBDatabase, fc.SurrealDB.Database)
	overlay("BUDDY_SURREALDB_USER", &cfg.SurrealDBUser, fc.SurrealDB.User)
	overlay("BUDDY_SURREALDB_PASS", &cfg.SurrealDBPass, fc.SurrealDB.Pass)
	overlay("BUDDY_SURREALDB_AUTH_LEVEL", &cfg.SurrealDBAuthLevel, fc.SurrealDB.AuthLevel)
	overlay("BUDDY_LLM_PROVIDER", &cfg.LLMProvider, fc.LLM.Provider)
	overlay("BUDDY_LLM_MODEL", &cfg.LLMModel, fc.LLM.Model)
	overlay("BUDDY_OLLAMA_HOST", &cfg.OllamaHost, fc.LLM.OllamaHost)
	overlay("BUDDY_LOG_FILE", &cfg.LogFile, fc.LogFile)

	if fc.EnableCORS != nil && os.Getenv("BUDDY_ENABLE_CORS") == "" {
		cfg.EnableCORS = *fc.EnableCORS
	}
	if fc.LogLevel != "" && os.Getenv("BUDDY_LOG_LEVEL") == "" {
		cfg.LogLevel = parseLogLevel(fc.LogLevel)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
