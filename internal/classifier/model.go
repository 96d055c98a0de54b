package classifier

import "context"

// Model é o provedor externo de linguagem: recebe o prompt e devolve texto livre.
// Falhas de transporte ou da API devem ser *models.CommunicationError.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// Outcome é o estado terminal de uma classificação
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeMocked
	OutcomeParseFailure
	OutcomeCommunicationFailure
	OutcomeUnexpectedFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeMocked:
		return "mocked"
	case OutcomeParseFailure:
		return "parse_failure"
	case OutcomeCommunicationFailure:
		return "communication_failure"
	case OutcomeUnexpectedFailure:
		return "unexpected_failure"
	default:
		return "unknown"
	}
}
