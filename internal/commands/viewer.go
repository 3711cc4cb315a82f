package commands

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/cashbook/internal/replication"
)

func newViewerCommand() *cobra.Command {
	opts := nodeOptions{}

	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Run a viewer device (read-only mirror)",
		Long: "Starts a viewer device. The viewer pairs with an editor by its " +
			"pairing ID and mirrors the editor's ledger. Local edits are ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNode(cmd.Context(), replication.RoleViewer, opts)
		},
	}

	cmd.Flags().StringVar(&opts.listenAddr, "listen", ":8081", "address to listen on")
	cmd.Flags().StringVar(&opts.dbPath, "db", "cashbook-viewer.db", "path to local database")
	cmd.Flags().StringVar(&opts.pairID, "pair", "", "editor pairing ID to connect to")

	return cmd
}
