package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// ModelStatus informa o provedor ativo
type ModelStatus interface {
	Provider() string
	Mocked() bool
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	model       ModelStatus
	historyPath string
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(model ModelStatus, historyPath string) *HealthHandler {
	return &HealthHandler{
		model:       model,
		historyPath: historyPath,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Provider  string            `json:"provider"`
	Mocked    bool              `json:"mocked"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Provider:  h.model.Provider(),
		Mocked:    h.model.Mocked(),
		Timestamp: time.Now().Unix(),
	})
}

// Health godoc
// @Summary Health check
// @Description Verifica se o diretório do histórico é gravável e informa o provedor do modelo.
// @Description O modelo externo não é chamado.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Provider:  h.model.Provider(),
		Mocked:    h.model.Mocked(),
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := checkWritableDir(filepath.Dir(h.historyPath)); err != nil {
		response.Checks["history"] = "failed"
		response.Status = "unhealthy"
		response.Error = err.Error()
	} else {
		response.Checks["history"] = "ok"
	}

	if h.model.Mocked() {
		response.Checks["model"] = "mocked"
	} else {
		response.Checks["model"] = "configured"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

func checkWritableDir(dir string) error {
	f, err := os.CreateTemp(dir, ".healthcheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
