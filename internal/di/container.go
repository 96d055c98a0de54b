package di

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/autou/email-classifier/internal/api/handlers"
	"github.com/autou/email-classifier/internal/api/routes"
	"github.com/autou/email-classifier/internal/classifier"
	"github.com/autou/email-classifier/internal/classifier/adapter"
	"github.com/autou/email-classifier/internal/config"
	"github.com/autou/email-classifier/internal/history"
	"github.com/autou/email-classifier/internal/input"
	"github.com/autou/email-classifier/internal/logging"
	"github.com/autou/email-classifier/internal/metrics"
	"github.com/autou/email-classifier/internal/observability"
	"github.com/autou/email-classifier/web"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.LoadConfig,
		func(cfg *config.Config) (*zap.Logger, error) {
			return logging.New(cfg.LogLevel, cfg.LogFormat)
		},
		metrics.New,
		observability.InitTracer,

		// Domain
		func(cfg *config.Config, logger *zap.Logger) *history.Store {
			return history.NewStore(cfg.HistoryFile, logger.Named("history"))
		},
		func(cfg *config.Config) *input.Normalizer {
			return input.NewNormalizer(cfg.MaxUploadBytes)
		},
		func(cfg *config.Config, logger *zap.Logger) (classifier.Model, error) {
			model, err := adapter.NewModel(context.Background(), cfg)
			if err != nil {
				return nil, err
			}
			if model == nil {
				logger.Warn("chave de API não configurada, classificações serão simuladas",
					zap.String("provider", cfg.LLMProvider))
			}
			return model, nil
		},
		func(model classifier.Model, store *history.Store, m *metrics.Metrics, logger *zap.Logger) *classifier.Service {
			return classifier.NewService(model, store, m, logger.Named("classifier"))
		},

		// HTTP
		func(n *input.Normalizer, svc *classifier.Service, store *history.Store) routes.Handlers {
			return routes.Handlers{
				Classify: handlers.NewClassifyHandler(n, svc),
				History:  handlers.NewHistoryHandler(store),
				Frontend: handlers.NewFrontendHandler(web.IndexHTML),
				Health:   handlers.NewHealthHandler(svc, store.Path()),
			}
		},
		routes.SetupRouter,
	}

	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return nil, err
		}
	}

	return container, nil
}
