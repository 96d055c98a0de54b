package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autou/email-classifier/internal/history"
	"github.com/autou/email-classifier/internal/metrics"
	"github.com/autou/email-classifier/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HistoryRecorder grava uma tentativa de classificação
type HistoryRecorder interface {
	Append(ctx context.Context, partial models.PartialEntry) models.HistoryEntry
}

// ClassificationError é uma falha terminal que vira HTTP 500
type ClassificationError struct {
	Outcome Outcome
	Err     error
}

func (e *ClassificationError) Error() string {
	return e.Err.Error()
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// Detail é a mensagem exibida ao usuário
func (e *ClassificationError) Detail() string {
	if e.Outcome == OutcomeCommunicationFailure {
		return e.Err.Error()
	}
	return fmt.Sprintf("Ocorreu um erro inesperado: %v", e.Err)
}

type result struct {
	outcome        Outcome
	classification models.ClassificationResult
	err            error
}

// Service orquestra prompt, chamada ao modelo, interpretação e histórico
type Service struct {
	model   Model
	history HistoryRecorder
	metrics *metrics.Metrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewService cria o serviço de classificação. model nil ativa o modo simulado.
func NewService(model Model, recorder HistoryRecorder, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		model:   model,
		history: recorder,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("classifier"),
	}
}

// Mocked indica se não há credencial configurada
func (s *Service) Mocked() bool {
	return s.model == nil
}

// Provider retorna o provedor ativo ou "mock"
func (s *Service) Provider() string {
	if s.model == nil {
		return "mock"
	}
	return s.model.Provider()
}

// Classify executa a classificação de um texto já normalizado. Toda chamada
// grava exatamente uma entrada no histórico antes de retornar. Falhas de
// interpretação retornam o resultado sentinela sem erro.
func (s *Service) Classify(ctx context.Context, emailText string) (res *models.ClassificationResult, err error) {
	ctx, span := s.tracer.Start(ctx, "classifier.classify")
	defer span.End()

	input := history.TruncateInput(emailText)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("pânico durante a classificação", zap.Any("panic", r), zap.Stack("stack"))
			res, err = s.finish(ctx, span, input, result{
				outcome: OutcomeUnexpectedFailure,
				err:     fmt.Errorf("%w: %v", models.ErrUnexpected, r),
			})
		}
	}()

	return s.finish(ctx, span, input, s.run(ctx, emailText))
}

func (s *Service) run(ctx context.Context, emailText string) result {
	if s.model == nil {
		return result{outcome: OutcomeMocked, classification: models.MockedResult()}
	}

	prompt := BuildPrompt(emailText)

	start := time.Now()
	raw, err := s.model.Generate(ctx, prompt)
	s.metrics.ObserveModelRequest(s.model.Provider(), time.Since(start))
	if err != nil {
		if errors.Is(err, models.ErrCommunication) {
			return result{outcome: OutcomeCommunicationFailure, err: err}
		}
		return result{outcome: OutcomeUnexpectedFailure, err: err}
	}

	parsed, ok := Interpret(raw)
	if !ok {
		s.logger.Warn("resposta do modelo em formato inválido", zap.String("raw", raw))
		return result{outcome: OutcomeParseFailure, classification: parsed}
	}
	return result{outcome: OutcomeOK, classification: parsed}
}

func (s *Service) finish(ctx context.Context, span trace.Span, input string, r result) (*models.ClassificationResult, error) {
	entry := models.PartialEntry{Input: input}
	switch r.outcome {
	case OutcomeOK:
		entry.Classification, entry.Status = r.classification.Classificacao, models.StatusOK
	case OutcomeMocked:
		entry.Classification, entry.Status = models.HistoryMocked, models.StatusOK
	case OutcomeParseFailure:
		entry.Classification, entry.Status = models.HistoryErroParsing, models.StatusFalha
	case OutcomeCommunicationFailure:
		entry.Classification, entry.Status = models.HistoryErroAPI, models.StatusFalha
	default:
		entry.Classification, entry.Status = models.HistoryErroGeral, models.StatusFalha
	}

	s.history.Append(ctx, entry)
	s.metrics.ObserveClassification(r.outcome.String(), entry.Status)

	span.SetAttributes(
		attribute.String("classifier.outcome", r.outcome.String()),
		attribute.String("classifier.classification", entry.Classification),
		attribute.String("classifier.provider", s.Provider()),
	)

	if r.err != nil {
		s.logger.Error("falha na classificação",
			zap.String("outcome", r.outcome.String()),
			zap.Error(r.err))
		span.RecordError(r.err)
		span.SetStatus(codes.Error, r.outcome.String())
		return nil, &ClassificationError{Outcome: r.outcome, Err: r.err}
	}

	span.SetStatus(codes.Ok, r.outcome.String())
	classification := r.classification
	return &classification, nil
}
