package models

// Categorias aceitas pelo prompt de classificação
const (
	CategoriaProdutivo   = "Produtivo"
	CategoriaImprodutivo = "Improdutivo"
	CategoriaSpam        = "Spam"
)

// RespostaSpam é a resposta sugerida obrigatória para e-mails classificados como Spam
const RespostaSpam = "Mover para lixeira e bloquear remetente."

// ClassificationResult é o payload devolvido ao cliente de POST /classify
type ClassificationResult struct {
	Classificacao    string `json:"CLASSIFICACAO" example:"Produtivo"`
	RespostaSugerida string `json:"RESPOSTA_SUGERIDA" example:"Olá! Recebemos sua solicitação e retornaremos em breve."`
	Mocked           bool   `json:"mocked,omitempty" example:"false"`
}

// ParseFailureResult é o resultado sentinela devolvido quando a resposta da IA não é um JSON válido
func ParseFailureResult() ClassificationResult {
	return ClassificationResult{
		Classificacao:    "Erro de IA",
		RespostaSugerida: "A IA não retornou um formato válido.",
	}
}

// MockedResult é o resultado determinístico usado quando não há chave de API configurada
func MockedResult() ClassificationResult {
	return ClassificationResult{
		Classificacao:    "IMPRODUTIVO (Mocked)",
		RespostaSugerida: "Chave de API não configurada. A classificação foi simulada para teste.",
		Mocked:           true,
	}
}

// ErrorResponse é o corpo de erro das rotas HTTP
type ErrorResponse struct {
	Detail string `json:"detail" example:"O campo de e-mail não pode estar vazio."`
}
