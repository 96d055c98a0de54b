package classifier

import (
	"fmt"

	"github.com/autou/email-classifier/internal/models"
)

const promptTemplate = `Você é um assistente de IA sênior de uma empresa financeira.
Sua tarefa é analisar o e-mail fornecido e executar duas ações:
1. CLASSIFICAR: O e-mail em uma das três categorias EXATAS:
   - 'Produtivo' (requer uma ação, suporte ou solução).
   - 'Improdutivo' (mensagem social, agradecimento, felicitação).
   - 'Spam' (e-mails não solicitados, phishing, promoções genéricas, conteúdo suspeito ou fraudulento).
2. GERAR RESPOSTA: Gerar uma RESPOSTA_SUGERIDA curta (máximo 4 frases). Se a classificação for 'Spam', a resposta sugerida deve ser EXATAMENTE: '%s'

Sua resposta DEVE ser um objeto JSON válido, sem texto extra, no formato EXATO:
{
    "CLASSIFICACAO": "[Produtivo, Improdutivo ou Spam]",
    "RESPOSTA_SUGERIDA": "[Sua sugestão de resposta ou instrução para Spam]"
}

---
E-mail a classificar:
%s
`

// BuildPrompt insere o texto do e-mail, sem alterações, no prompt de classificação
func BuildPrompt(emailText string) string {
	return fmt.Sprintf(promptTemplate, models.RespostaSpam, emailText)
}
