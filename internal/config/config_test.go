package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, ProviderNone, cfg.LLMProvider)
	assert.Equal(t, "llama3.2", cfg.LLMModel)
	assert.Equal(t, "ws://localhost:8000/rpc", cfg.SurrealDBURL)
	assert.Equal(t, "/tmp/buddy.log", cfg.LogFile)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BUDDY_LISTEN_ADDR", ":9100")
	t.Setenv("BUDDY_ENABLE_CORS", "false")
	t.Setenv("BUDDY_STORE_BACKEND", StoreSurreal)
	t.Setenv("BUDDY_LLM_PROVIDER", ProviderOllama)
	t.Setenv("BUDDY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, StoreSurreal, cfg.StoreBackend)
	assert.Equal(t, ProviderOllama, cfg.LLMProvider)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadMergesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.yaml")
	content := `listen_addr: ":9200"
enable_cors: false
store_backend: surrealdb
surrealdb:
  url: ws://db.internal:8000/rpc
  namespace: prod
llm:
  provider: ollama
  model: mistral
log_level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("BUDDY_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9200", cfg.ListenAddr)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, StoreSurreal, cfg.StoreBackend)
	assert.Equal(t, "ws://db.internal:8000/rpc", cfg.SurrealDBURL)
	assert.Equal(t, "prod", cfg.SurrealDBNamespace)
	assert.Equal(t, ProviderOllama, cfg.LLMProvider)
	assert.Equal(t, "mistral", cfg.LLMModel)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)

	// File values only fill gaps.
	assert.Equal(t, "diary", cfg.SurrealDBDatabase)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9200\"\n"), 0o644))
	t.Setenv("BUDDY_CONFIG_FILE", path)
	t.Setenv("BUDDY_LISTEN_ADDR", ":9300")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9300", cfg.ListenAddr)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("BUDDY_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}
