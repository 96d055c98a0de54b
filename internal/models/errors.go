package models

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput          = errors.New("o campo de e-mail não pode estar vazio")
	ErrUnsupportedFileType = errors.New("tipo de arquivo não suportado")
	ErrUnreadableContent   = errors.New("não foi possível ler o conteúdo do arquivo")
	ErrCommunication       = errors.New("erro de comunicação com a API do modelo")
	ErrUnexpected          = errors.New("erro inesperado")
)

// UnsupportedFileTypeError informa a extensão rejeitada
type UnsupportedFileTypeError struct {
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("tipo de arquivo não suportado: .%s (use .txt ou .pdf)", e.Extension)
}

func (e *UnsupportedFileTypeError) Unwrap() error {
	return ErrUnsupportedFileType
}

// IsInputError indica se o erro é uma falha de validação da entrada (HTTP 400)
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrUnreadableContent)
}

// CommunicationError é uma falha na chamada ao provedor do modelo
type CommunicationError struct {
	Provider string
	Err      error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("Erro de comunicação com a API do %s: %v", e.Provider, e.Err)
}

func (e *CommunicationError) Unwrap() []error {
	return []error{ErrCommunication, e.Err}
}
