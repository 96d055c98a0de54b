package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autou/email-classifier/internal/api/handlers"
	"github.com/autou/email-classifier/internal/classifier"
	"github.com/autou/email-classifier/internal/config"
	"github.com/autou/email-classifier/internal/history"
	"github.com/autou/email-classifier/internal/input"
	"github.com/autou/email-classifier/internal/metrics"
	"github.com/autou/email-classifier/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeModel struct {
	reply string
	err   error
	calls int
}

func (f *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeModel) Provider() string { return "fake" }

type testServer struct {
	router *gin.Engine
	store  *history.Store
}

func newTestServer(t *testing.T, model classifier.Model) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		MaxUploadBytes: 1 << 20,
		MetricsEnabled: true,
		HistoryFile:    filepath.Join(t.TempDir(), "history.json"),
	}
	logger := zap.NewNop()
	m := metrics.New()
	store := history.NewStore(cfg.HistoryFile, logger)
	svc := classifier.NewService(model, store, m, logger)

	router := SetupRouter(cfg, logger, m, Handlers{
		Classify: handlers.NewClassifyHandler(input.NewNormalizer(cfg.MaxUploadBytes), svc),
		History:  handlers.NewHistoryHandler(store),
		Frontend: handlers.NewFrontendHandler([]byte("<html>classificador</html>")),
		Health:   handlers.NewHealthHandler(svc, cfg.HistoryFile),
	})

	return &testServer{router: router, store: store}
}

func (s *testServer) postText(text string) *httptest.ResponseRecorder {
	form := url.Values{"email_text": {text}}
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postFile(t *testing.T, name string, content []byte, text string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if text != "" {
		require.NoError(t, mw.WriteField("email_text", text))
	}
	part, err := mw.CreateFormFile("email_file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/classify", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) history(t *testing.T) []models.HistoryEntry {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	return entries
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestClassifyMocked(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.postText("oi")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, "IMPRODUTIVO (Mocked)", payload["CLASSIFICACAO"])
	assert.Equal(t, true, payload["mocked"])
	assert.NotEmpty(t, payload["RESPOSTA_SUGERIDA"])

	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mocked", entries[0].Classification)
	assert.Equal(t, "OK", entries[0].Status)
	assert.Equal(t, "oi...", entries[0].Input)
}

func TestClassifySuccessOmitsMocked(t *testing.T) {
	model := &fakeModel{reply: "```json\n{\"CLASSIFICACAO\":\"Spam\",\"RESPOSTA_SUGERIDA\":\"Mover para lixeira e bloquear remetente.\"}\n```"}
	s := newTestServer(t, model)

	w := s.postText("Você ganhou um prêmio! Clique aqui.")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, "Spam", payload["CLASSIFICACAO"])
	assert.Equal(t, models.RespostaSpam, payload["RESPOSTA_SUGERIDA"])
	assert.NotContains(t, payload, "mocked")

	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Spam", entries[0].Classification)
}

func TestClassifyParseFailureIsSuccessShaped(t *testing.T) {
	s := newTestServer(t, &fakeModel{reply: "Sorry, I cannot help."})

	w := s.postText("Preciso da segunda via do boleto")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, "Erro de IA", payload["CLASSIFICACAO"])
	assert.Equal(t, "A IA não retornou um formato válido.", payload["RESPOSTA_SUGERIDA"])

	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Erro Parsing", entries[0].Classification)
	assert.Equal(t, "FALHA", entries[0].Status)
}

func TestClassifyCommunicationFailure(t *testing.T) {
	upstream := fmt.Errorf("429 RESOURCE_EXHAUSTED")
	s := newTestServer(t, &fakeModel{err: &models.CommunicationError{Provider: "Gemini", Err: upstream}})

	w := s.postText("Preciso de suporte")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decode(t, w)["detail"].(string)
	assert.Contains(t, detail, "Erro de comunicação com a API do Gemini")
	assert.Contains(t, detail, "429 RESOURCE_EXHAUSTED")

	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Erro API", entries[0].Classification)
	assert.Equal(t, "FALHA", entries[0].Status)
}

func TestClassifyUnexpectedFailure(t *testing.T) {
	s := newTestServer(t, &fakeModel{err: fmt.Errorf("resposta vazia do Gemini")})

	w := s.postText("Preciso de suporte")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "Ocorreu um erro inesperado")

	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Erro Geral", entries[0].Classification)
}

func TestClassifyInputValidation(t *testing.T) {
	tests := []struct {
		name       string
		send       func(t *testing.T, s *testServer) *httptest.ResponseRecorder
		wantDetail string
	}{
		{
			name:       "texto vazio",
			send:       func(t *testing.T, s *testServer) *httptest.ResponseRecorder { return s.postText("") },
			wantDetail: "O campo de e-mail não pode estar vazio.",
		},
		{
			name:       "apenas espaços",
			send:       func(t *testing.T, s *testServer) *httptest.ResponseRecorder { return s.postText("   \n\t") },
			wantDetail: "O campo de e-mail não pode estar vazio.",
		},
		{
			name: "extensão não suportada",
			send: func(t *testing.T, s *testServer) *httptest.ResponseRecorder {
				return s.postFile(t, "photo.png", []byte{0x89, 'P', 'N', 'G'}, "")
			},
			wantDetail: "png",
		},
		{
			name: "conteúdo ilegível",
			send: func(t *testing.T, s *testServer) *httptest.ResponseRecorder {
				return s.postFile(t, "email.pdf", []byte{'%', 'P', 'D', 'F', 0xff, 0x00, 0x81}, "")
			},
			wantDetail: "Não foi possível ler o conteúdo do arquivo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{reply: `{"CLASSIFICACAO":"Produtivo"}`}
			s := newTestServer(t, model)

			w := tt.send(t, s)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w)["detail"], tt.wantDetail)
			assert.Empty(t, s.history(t))
			assert.Zero(t, model.calls)
		})
	}
}

func TestClassifyFileTakesPriority(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.postFile(t, "email.txt", []byte("Conteúdo vindo do arquivo"), "conteúdo digitado")

	require.Equal(t, http.StatusOK, w.Code)
	entries := s.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Conteúdo vindo do arquivo...", entries[0].Input)
}

func TestHistoryOrderAfterManyCalls(t *testing.T) {
	s := newTestServer(t, &fakeModel{reply: `{"CLASSIFICACAO":"Produtivo","RESPOSTA_SUGERIDA":"ok"}`})

	for i := 0; i < 14; i++ {
		require.Equal(t, http.StatusOK, s.postText(fmt.Sprintf("pedido número %02d", i)).Code)
	}

	entries := s.history(t)
	require.Len(t, entries, history.MaxEntries)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("pedido número %02d...", 13-i), entry.Input)
		assert.LessOrEqual(t, len([]rune(entry.Input)), 53)
	}
}

func TestHistoryEmptyIsArray(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestIndexServesFrontend(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "classificador")
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	s.postText("oi")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	health := decode(t, w)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, true, health["mocked"])
	assert.Equal(t, "mock", health["provider"])

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `email_classifier_classifications_total{outcome="mocked",status="OK"} 1`)
}
