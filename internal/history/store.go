// Package history persiste o histórico das últimas classificações em um
// arquivo JSON.
//
// O arquivo é a única fonte de verdade: cada leitura e cada escrita o carregam
// novamente. Não há lock entre requisições concorrentes, então ciclos de
// leitura-modificação-escrita simultâneos podem perder entradas (o último a
// escrever vence).
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/autou/email-classifier/internal/models"
	"go.uber.org/zap"
)

const (
	// MaxEntries é o número máximo de entradas mantidas no arquivo
	MaxEntries = 10

	inputPreviewRunes = 50
	ellipsis          = "..."
)

// Store é o histórico limitado gravado em arquivo
type Store struct {
	path   string
	logger *zap.Logger
	now    func() time.Time
}

// Option configura um Store
type Option func(*Store)

// WithClock substitui o relógio usado para carimbar as entradas
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore cria um histórico gravado em path
func NewStore(path string, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path retorna o caminho do arquivo de histórico
func (s *Store) Path() string {
	return s.path
}

// Load retorna até MaxEntries entradas, mais recentes primeiro.
// Arquivo ausente ou malformado resulta em lista vazia.
func (s *Store) Load(ctx context.Context) []models.HistoryEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("falha ao ler histórico", zap.String("path", s.path), zap.Error(err))
		}
		return []models.HistoryEntry{}
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("histórico malformado, ignorando", zap.String("path", s.path), zap.Error(err))
		return []models.HistoryEntry{}
	}
	if entries == nil {
		return []models.HistoryEntry{}
	}

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Append carimba a entrada com data e hora locais, insere no início do
// histórico e regrava o arquivo inteiro. Falhas de escrita são apenas logadas.
func (s *Store) Append(ctx context.Context, partial models.PartialEntry) models.HistoryEntry {
	now := s.now()
	entry := models.HistoryEntry{
		Timestamp:      now.Format("15:04:05"),
		Date:           now.Format("2006-01-02"),
		Input:          partial.Input,
		Classification: partial.Classification,
		Status:         partial.Status,
	}

	entries := append([]models.HistoryEntry{entry}, s.Load(ctx)...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.write(entries); err != nil {
		s.logger.Error("ERRO ao salvar histórico", zap.String("path", s.path), zap.Error(err))
	}

	return entry
}

func (s *Store) write(entries []models.HistoryEntry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return os.WriteFile(s.path, buf.Bytes(), 0o644)
}

// TruncateInput retorna os primeiros 50 caracteres do texto seguidos de "...".
// As reticências são sempre adicionadas, mesmo para textos curtos.
func TruncateInput(text string) string {
	if utf8.RuneCountInString(text) <= inputPreviewRunes {
		return text + ellipsis
	}
	runes := []rune(text)
	return string(runes[:inputPreviewRunes]) + ellipsis
}
