package routes

import (
	"github.com/autou/email-classifier/internal/api/handlers"
	"github.com/autou/email-classifier/internal/config"
	"github.com/autou/email-classifier/internal/logging"
	"github.com/autou/email-classifier/internal/metrics"
	middlewares "github.com/autou/email-classifier/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Classify *handlers.ClassifyHandler
	History  *handlers.HistoryHandler
	Frontend *handlers.FrontendHandler
	Health   *handlers.HealthHandler
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics, h Handlers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		logging.RequestLogger(logger),
		middlewares.RequestTiming(),
		middlewares.CORS(),
	)

	r.GET("/", h.Frontend.Index)
	r.GET("/history", h.History.List)
	r.POST("/classify", h.Classify.Classify)

	r.GET("/liveness", h.Health.Liveness)
	r.GET("/health", h.Health.Health)

	if cfg.MetricsEnabled && m != nil {
		r.GET("/metrics", m.Handler())
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
