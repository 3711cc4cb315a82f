package commands

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/cashbook/internal/rates"
	"github.com/iudanet/cashbook/internal/replication"
)

func newEditorCommand() *cobra.Command {
	opts := nodeOptions{}

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Run the editor device (the single writer)",
		Long: "Starts the editor device. The editor owns the ledger: it accepts " +
			"edits, closes the day and broadcasts its state to every connected viewer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNode(cmd.Context(), replication.RoleEditor, opts)
		},
	}

	cmd.Flags().StringVar(&opts.listenAddr, "listen", ":8080", "address to listen on")
	cmd.Flags().StringVar(&opts.dbPath, "db", "cashbook.db", "path to local database")
	cmd.Flags().StringVar(&opts.ratesURL, "rates-url", rates.DefaultURL, "exchange rates API URL")

	return cmd
}
