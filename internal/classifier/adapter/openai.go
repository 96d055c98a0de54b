package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/autou/email-classifier/internal/models"
	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel é o modelo usado quando nenhum é configurado
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIConfig configuração para o adapter OpenAI
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIModel usa chat completions da OpenAI como provedor alternativo
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel cria o cliente OpenAI
func NewOpenAIModel(cfg OpenAIConfig) (*OpenAIModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("chave da API OpenAI não configurada")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIModel{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Generate envia o prompt como mensagem de usuário
func (o *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &models.CommunicationError{Provider: o.Provider(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("resposta vazia da OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

// Provider identifica o provedor nas mensagens e métricas
func (o *OpenAIModel) Provider() string {
	return "OpenAI"
}
