package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autou/email-classifier/internal/classifier"
	"github.com/autou/email-classifier/internal/input"
)

var (
	classifyText string
	classifyFile string
)

func newClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classifica um e-mail",
		Long: `Classifica o texto informado em --text ou o conteúdo de um arquivo .txt/.pdf
informado em --file. Quando os dois são informados o arquivo tem prioridade.

O resultado é impresso em JSON e registrado no histórico.`,
		Example: `  emailctl classify --text "Preciso da segunda via do boleto"
  emailctl classify --file mensagem.txt`,
		RunE: runClassify,
	}

	cmd.Flags().StringVar(&classifyText, "text", "", "Texto do e-mail")
	cmd.Flags().StringVar(&classifyFile, "file", "", "Arquivo .txt ou .pdf com o texto do e-mail")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(n *input.Normalizer, svc *classifier.Service, logger *zap.Logger) error {
		defer logger.Sync()

		text, err := readInput(n, cmd.InOrStdin())
		if err != nil {
			return err
		}

		result, err := svc.Classify(cmd.Context(), text)
		if err != nil {
			var classErr *classifier.ClassificationError
			if errors.As(err, &classErr) {
				return errors.New(classErr.Detail())
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	})
}

// readInput lê o arquivo quando informado; "-" em --text lê da entrada padrão
func readInput(n *input.Normalizer, stdin io.Reader) (string, error) {
	if classifyFile != "" {
		if err := input.CheckExtension(classifyFile); err != nil {
			return "", err
		}
		f, err := os.Open(classifyFile)
		if err != nil {
			return "", fmt.Errorf("erro ao abrir %s: %w", filepath.Base(classifyFile), err)
		}
		return n.FromFile(classifyFile, f)
	}

	if classifyText == "-" {
		return n.FromFile("stdin.txt", io.NopCloser(stdin))
	}

	return n.FromText(classifyText)
}
