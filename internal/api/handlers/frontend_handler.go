package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FrontendHandler struct {
	page []byte
}

func NewFrontendHandler(page []byte) *FrontendHandler {
	return &FrontendHandler{page: page}
}

// Index serve a página estática do classificador
func (h *FrontendHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}
