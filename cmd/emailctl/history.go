package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/autou/email-classifier/internal/history"
)

var historyJSON bool

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lista as últimas classificações",
		Long:  fmt.Sprintf("Lista as %d classificações mais recentes, da mais nova para a mais antiga.", history.MaxEntries),
		RunE:  runHistory,
	}

	cmd.Flags().BoolVar(&historyJSON, "json", false, "Saída em JSON")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(store *history.Store) error {
		entries := store.Load(cmd.Context())

		if historyJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma classificação registrada.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATA\tHORA\tCLASSIFICAÇÃO\tSTATUS\tENTRADA")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Date, e.Timestamp, e.Classification, e.Status, e.Input)
		}
		return w.Flush()
	})
}
