package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/autou/email-classifier/internal/classifier"
	"github.com/autou/email-classifier/internal/input"
	"github.com/autou/email-classifier/internal/models"
	"github.com/gin-gonic/gin"
)

// Classifier é o caso de uso de classificação usado pelo handler
type Classifier interface {
	Classify(ctx context.Context, emailText string) (*models.ClassificationResult, error)
}

type ClassifyHandler struct {
	normalizer *input.Normalizer
	classifier Classifier
}

func NewClassifyHandler(normalizer *input.Normalizer, classifier Classifier) *ClassifyHandler {
	return &ClassifyHandler{
		normalizer: normalizer,
		classifier: classifier,
	}
}

// Classify godoc
// @Summary Classifica um e-mail
// @Description Recebe o texto do e-mail (campo email_text) ou um arquivo .txt/.pdf (campo email_file),
// @Description classifica como Produtivo, Improdutivo ou Spam e sugere uma resposta.
// @Description O arquivo tem prioridade sobre o texto. Sem chave de API configurada o resultado é simulado.
// @Tags classificacao
// @Accept multipart/form-data
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param email_text formData string false "Texto do e-mail"
// @Param email_file formData file false "Arquivo .txt ou .pdf com o texto do e-mail"
// @Success 200 {object} models.ClassificationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /classify [post]
func (h *ClassifyHandler) Classify(c *gin.Context) {
	emailText := c.PostForm("email_text")

	file, err := formFile(c, "email_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: inputErrorDetail(err)})
		return
	}

	text, err := h.normalizer.Normalize(emailText, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: inputErrorDetail(err)})
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), text)
	if err != nil {
		_ = c.Error(err)
		var classErr *classifier.ClassificationError
		if errors.As(err, &classErr) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: classErr.Detail()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: fmt.Sprintf("Ocorreu um erro inesperado: %v", err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// formFile retorna nil quando a requisição não traz o arquivo
func formFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(name)
	switch {
	case err == nil:
		return file, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %v", models.ErrUnreadableContent, err)
	}
}

func inputErrorDetail(err error) string {
	var typeErr *models.UnsupportedFileTypeError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Tipo de arquivo não suportado: '%s'. Envie um arquivo .txt ou .pdf.", typeErr.Extension)
	case errors.Is(err, models.ErrUnreadableContent):
		return "Não foi possível ler o conteúdo do arquivo. Envie um arquivo de texto em UTF-8."
	case errors.Is(err, models.ErrEmptyInput):
		return "O campo de e-mail não pode estar vazio."
	default:
		return err.Error()
	}
}
