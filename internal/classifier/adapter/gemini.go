package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/autou/email-classifier/internal/models"
	"google.golang.org/genai"
)

// DefaultGeminiModel é o modelo de chat usado quando nenhum é configurado
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig configuração para o adapter Gemini
type GeminiConfig struct {
	APIKey    string
	ChatModel string
	// BaseURL substitui o endpoint da API (usado em testes)
	BaseURL string
}

// GeminiModel encapsula chamadas de geração de conteúdo ao Gemini
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel cria o cliente Gemini. Não faz chamadas de rede.
func NewGeminiModel(ctx context.Context, cfg GeminiConfig) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("chave da API Gemini não configurada")
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	return &GeminiModel{client: client, model: cfg.ChatModel}, nil
}

// Generate envia o prompt e devolve o texto da primeira candidata
func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	content := genai.NewContentFromText(prompt, genai.RoleUser)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", &models.CommunicationError{Provider: g.Provider(), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta vazia do Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// Provider identifica o provedor nas mensagens e métricas
func (g *GeminiModel) Provider() string {
	return "Gemini"
}

// ChatModel retorna o modelo configurado
func (g *GeminiModel) ChatModel() string {
	return g.model
}
