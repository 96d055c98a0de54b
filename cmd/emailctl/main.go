// Command emailctl classifica e-mails e consulta o histórico sem subir o servidor HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/autou/email-classifier/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "emailctl",
		Short: "Classificador de e-mails pela linha de comando",
		Long: `Classifica e-mails como Produtivo, Improdutivo ou Spam usando a mesma
configuração do servidor (variáveis de ambiente ou .env).

Sem chave de API configurada o resultado é simulado.`,
		SilenceUsage: true,
	}

	root.AddCommand(newClassifyCommand())
	root.AddCommand(newHistoryCommand())

	return root
}

func buildContainer() (*dig.Container, error) {
	container, err := di.BuildContainer()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar container: %w", err)
	}
	return container, nil
}
