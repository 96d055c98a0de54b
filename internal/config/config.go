// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// Um arquivo .env, se existir, é carregado antes da leitura das variáveis.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: Modo do gin, debug ou release (default: release)
//   - MAX_UPLOAD_BYTES: Tamanho máximo do arquivo enviado em /classify (default: 5242880)
//
// ## Modelo
//   - LLM_PROVIDER: Provedor do modelo, gemini ou openai (default: gemini)
//   - GEMINI_API_KEY: Chave da API Google Gemini. Vazia ativa o modo simulado.
//   - GEMINI_CHAT_MODEL: Modelo de chat (default: gemini-2.0-flash)
//   - GEMINI_BASE_URL: Endpoint alternativo da API Gemini (opcional)
//   - OPENAI_API_KEY: Chave da API OpenAI quando LLM_PROVIDER=openai
//   - OPENAI_MODEL: Modelo de chat OpenAI (default: gpt-4o-mini)
//   - OPENAI_BASE_URL: Endpoint alternativo compatível com OpenAI (opcional)
//
// ## Histórico
//   - HISTORY_FILE: Arquivo JSON do histórico (default: history.json)
//
// ## Observabilidade
//   - LOG_LEVEL: debug, info, warn ou error (default: info)
//   - LOG_FORMAT: console ou json (default: console)
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - METRICS_ENABLED: Expõe /metrics (default: true)
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provedores de modelo suportados
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT" validate:"required,numeric"`
	GinMode        string `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES" validate:"gt=0"`

	// Model configuration
	LLMProvider     string `mapstructure:"LLM_PROVIDER" validate:"oneof=gemini openai"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	GeminiChatModel string `mapstructure:"GEMINI_CHAT_MODEL" validate:"required"`
	GeminiBaseURL   string `mapstructure:"GEMINI_BASE_URL" validate:"omitempty,url"`
	OpenAIAPIKey    string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel     string `mapstructure:"OPENAI_MODEL" validate:"required"`
	OpenAIBaseURL   string `mapstructure:"OPENAI_BASE_URL" validate:"omitempty,url"`

	HistoryFile string `mapstructure:"HISTORY_FILE" validate:"required"`

	// Observability configuration
	LogLevel        string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat       string `mapstructure:"LOG_FORMAT" validate:"oneof=console json"`
	TracingEnabled  bool   `mapstructure:"TRACING_ENABLED"`
	TracingEndpoint string `mapstructure:"TRACING_ENDPOINT"`
	MetricsEnabled  bool   `mapstructure:"METRICS_ENABLED"`
}

var defaults = map[string]any{
	"SERVER_PORT":       "8080",
	"GIN_MODE":          "release",
	"MAX_UPLOAD_BYTES":  int64(5 << 20),
	"LLM_PROVIDER":      ProviderGemini,
	"GEMINI_API_KEY":    "",
	"GEMINI_CHAT_MODEL": "gemini-2.0-flash",
	"GEMINI_BASE_URL":   "",
	"OPENAI_API_KEY":    "",
	"OPENAI_MODEL":      "gpt-4o-mini",
	"OPENAI_BASE_URL":   "",
	"HISTORY_FILE":      "history.json",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "console",
	"TRACING_ENABLED":   false,
	"TRACING_ENDPOINT":  "localhost:4317",
	"METRICS_ENABLED":   true,
}

// LoadConfig lê .env (opcional) e as variáveis de ambiente.
// A ausência da chave de API não é erro: o serviço opera em modo simulado.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifica os valores da configuração
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// APIKey retorna a credencial do provedor selecionado
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Mocked indica se o serviço deve operar sem chamar o modelo
func (c *Config) Mocked() bool {
	return c.APIKey() == ""
}
