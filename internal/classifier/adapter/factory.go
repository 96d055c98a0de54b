package adapter

import (
	"context"
	"fmt"

	"github.com/autou/email-classifier/internal/classifier"
	"github.com/autou/email-classifier/internal/config"
)

// NewModel cria o provedor configurado. Sem chave de API retorna (nil, nil),
// o que coloca o serviço em modo simulado.
func NewModel(ctx context.Context, cfg *config.Config) (classifier.Model, error) {
	if cfg.APIKey() == "" {
		return nil, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		m, err := NewGeminiModel(ctx, GeminiConfig{
			APIKey:    cfg.GeminiAPIKey,
			ChatModel: cfg.GeminiChatModel,
			BaseURL:   cfg.GeminiBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.ProviderOpenAI:
		m, err := NewOpenAIModel(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("provedor de modelo desconhecido: %s", cfg.LLMProvider)
	}
}
