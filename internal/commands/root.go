// Package commands собирает CLI устройства: корневая команда и
// подкоманды editor и viewer.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/cashbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cashbook",
		Short:   "Peer-to-peer replicated cash book for small guest houses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newEditorCommand())
	rootCmd.AddCommand(newViewerCommand())

	return rootCmd
}
