package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgercheck/internal/journal"
)

func newEntriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entries FILE",
		Short: "Write the accepted entries of a ledger as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.process(args[0])
			if err != nil {
				return err
			}
			if n := len(p.errors); n > 0 {
				a.logger.Warn("rejected directives are not exported", "file", args[0], "errors", n)
			}
			return journal.WriteEntries(cmd.OutOrStdout(), p.result.Entries)
		},
	}
}
