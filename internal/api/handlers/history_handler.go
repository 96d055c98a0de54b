package handlers

import (
	"context"
	"net/http"

	"github.com/autou/email-classifier/internal/models"
	"github.com/gin-gonic/gin"
)

// HistoryLoader lê o histórico de classificações
type HistoryLoader interface {
	Load(ctx context.Context) []models.HistoryEntry
}

type HistoryHandler struct {
	history HistoryLoader
}

func NewHistoryHandler(history HistoryLoader) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List godoc
// @Summary Histórico de classificações
// @Description Retorna as últimas 10 classificações, da mais recente para a mais antiga
// @Tags historico
// @Produce json
// @Success 200 {array} models.HistoryEntry
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.history.Load(c.Request.Context()))
}
