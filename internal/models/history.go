package models

// Status de uma entrada do histórico
const (
	StatusOK    = "OK"
	StatusFalha = "FALHA"
)

// Classificações sentinela gravadas no histórico para falhas internas
const (
	HistoryMocked      = "Mocked"
	HistoryErroParsing = "Erro Parsing"
	HistoryErroAPI     = "Erro API"
	HistoryErroGeral   = "Erro Geral"
)

// HistoryEntry é um registro de uma tentativa de classificação
type HistoryEntry struct {
	Timestamp      string `json:"timestamp" example:"14:03:27"`
	Date           string `json:"date" example:"2025-09-12"`
	Input          string `json:"input" example:"Olá, gostaria de saber o status do meu chamado..."`
	Classification string `json:"classification" example:"Produtivo"`
	Status         string `json:"status" example:"OK"`
}

// PartialEntry é uma entrada ainda sem data e hora
type PartialEntry struct {
	Input          string
	Classification string
	Status         string
}
