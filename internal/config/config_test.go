package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "gemini")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiChatModel)
	assert.Equal(t, "history.json", cfg.HistoryFile)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.Mocked())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("HISTORY_FILE", "/tmp/historico.json")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.False(t, cfg.Mocked())
	assert.Equal(t, "/tmp/historico.json", cfg.HistoryFile)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "provedor desconhecido", key: "LLM_PROVIDER", value: "bedrock"},
		{name: "nível de log inválido", key: "LOG_LEVEL", value: "verbose"},
		{name: "porta não numérica", key: "SERVER_PORT", value: "http"},
		{name: "formato de log inválido", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestAPIKeyFollowsProvider(t *testing.T) {
	cfg := &Config{LLMProvider: ProviderGemini, GeminiAPIKey: "g", OpenAIAPIKey: "o"}
	assert.Equal(t, "g", cfg.APIKey())

	cfg.LLMProvider = ProviderOpenAI
	assert.Equal(t, "o", cfg.APIKey())

	cfg.OpenAIAPIKey = ""
	assert.True(t, cfg.Mocked())
}
