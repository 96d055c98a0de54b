// Package input transforma o texto digitado ou o arquivo enviado em um único
// corpo de e-mail em texto puro.
package input

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/autou/email-classifier/internal/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxBytes limita o tamanho dos arquivos enviados (5 MiB)
const DefaultMaxBytes int64 = 5 << 20

// AllowedExtensions são as extensões aceitas para upload.
// Arquivos .pdf só são aceitos quando o conteúdo é texto decodificável.
var AllowedExtensions = map[string]bool{
	"txt": true,
	"pdf": true,
}

// Normalizer valida e normaliza a entrada de /classify
type Normalizer struct {
	maxBytes int64
}

// NewNormalizer cria um normalizador; maxBytes <= 0 usa DefaultMaxBytes
func NewNormalizer(maxBytes int64) *Normalizer {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Normalizer{maxBytes: maxBytes}
}

// Normalize usa o arquivo quando presente e nomeado; caso contrário, o texto
func (n *Normalizer) Normalize(text string, file *multipart.FileHeader) (string, error) {
	if file != nil && file.Filename != "" {
		if err := CheckExtension(file.Filename); err != nil {
			return "", err
		}
		f, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrUnreadableContent, err)
		}
		return n.FromFile(file.Filename, f)
	}
	return n.FromText(text)
}

// FromText valida texto digitado
func (n *Normalizer) FromText(text string) (string, error) {
	return finalize(text)
}

// FromFile lê e decodifica o conteúdo de um arquivo. O reader é sempre fechado.
func (n *Normalizer) FromFile(name string, rc io.ReadCloser) (string, error) {
	defer rc.Close()

	if err := CheckExtension(name); err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(rc, n.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnreadableContent, err)
	}
	if int64(len(data)) > n.maxBytes {
		return "", fmt.Errorf("%w: arquivo excede %d bytes", models.ErrUnreadableContent, n.maxBytes)
	}

	text, err := Decode(data)
	if err != nil {
		return "", err
	}
	return finalize(text)
}

// CheckExtension valida a extensão do nome do arquivo contra AllowedExtensions
func CheckExtension(name string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if !AllowedExtensions[ext] {
		return &models.UnsupportedFileTypeError{Extension: ext}
	}
	return nil
}

// Decode converte bytes em texto. Aceita UTF-8 (com ou sem BOM) e UTF-16 com BOM.
func Decode(data []byte) (string, error) {
	if !hasUTF16BOM(data) && !utf8.Valid(data) {
		return "", fmt.Errorf("%w: codificação não é UTF-8", models.ErrUnreadableContent)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnreadableContent, err)
	}
	if bytes.IndexByte(out, 0) >= 0 {
		return "", fmt.Errorf("%w: conteúdo binário", models.ErrUnreadableContent)
	}

	return string(out), nil
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE))
}

func finalize(text string) (string, error) {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return "", models.ErrEmptyInput
	}
	return text, nil
}
