package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/autou/email-classifier/docs"
	"github.com/autou/email-classifier/internal/config"
	"github.com/autou/email-classifier/internal/di"
	"github.com/autou/email-classifier/internal/observability"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Classificador de E-mails API
// @version         1.0
// @description     API que classifica e-mails como Produtivo, Improdutivo ou Spam e sugere uma resposta usando um modelo de linguagem
// @termsOfService  http://swagger.io/terms/

// @contact.name   AutoU
// @contact.url    https://www.autou.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Erro ao montar container de dependências: %v\n", err)
		os.Exit(1)
	}

	// o modo do gin precisa estar definido antes do router ser construído
	if err := container.Invoke(func(cfg *config.Config) {
		gin.SetMode(cfg.GinMode)
	}); err != nil {
		fmt.Printf("Erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Erro na aplicação: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, tracer *observability.Tracer, router *gin.Engine) error {
	defer logger.Sync()
	defer tracer.Shutdown()

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("servidor iniciado",
			zap.String("port", cfg.ServerPort),
			zap.String("provider", cfg.LLMProvider),
			zap.Bool("mocked", cfg.Mocked()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("erro ao iniciar servidor", zap.Error(err))
			return err
		}
		return nil
	case sig := <-sigCh:
		logger.Info("encerrando servidor", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
		return err
	}

	logger.Info("servidor encerrado")
	return nil
}
