package classifier

import (
	"encoding/json"
	"strings"

	"github.com/autou/email-classifier/internal/models"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// ExtractJSON remove cercas de markdown da resposta do modelo.
// Prioriza um bloco marcado como json, depois um bloco genérico; sem cercas,
// devolve a resposta apenas sem espaços nas bordas.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if idx := strings.Index(s, jsonFence); idx != -1 {
		s = s[idx+len(jsonFence):]
		if end := strings.Index(s, fence); end != -1 {
			s = s[:end]
		}
	} else if idx := strings.Index(s, fence); idx != -1 {
		s = s[idx+len(fence):]
		if end := strings.Index(s, fence); end != -1 {
			s = s[:end]
		}
	}

	return s
}

// Interpret converte a resposta do modelo em um ClassificationResult.
// ok é false quando o texto não é um objeto JSON ou não tem CLASSIFICACAO;
// os dois casos não são diferenciados.
func Interpret(raw string) (result models.ClassificationResult, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &fields); err != nil || fields == nil {
		return models.ParseFailureResult(), false
	}

	rawLabel, found := fields["CLASSIFICACAO"]
	if !found {
		return models.ParseFailureResult(), false
	}
	if err := json.Unmarshal(rawLabel, &result.Classificacao); err != nil {
		return models.ParseFailureResult(), false
	}

	if rawReply, found := fields["RESPOSTA_SUGERIDA"]; found {
		if err := json.Unmarshal(rawReply, &result.RespostaSugerida); err != nil {
			result.RespostaSugerida = string(rawReply)
		}
	}

	return result, true
}
