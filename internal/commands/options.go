package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgercheck/internal/options"
)

func newOptionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options [FILE]",
		Short: "Describe the supported options, or show their final values in FILE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err := io.WriteString(out, options.ListOptions())
				return err
			}

			p, err := a.process(args[0])
			if err != nil {
				return err
			}
			values := p.result.Options.Names()
			for _, d := range options.Descriptors() {
				fmt.Fprintf(out, "%-30s %s\n", d.Name, values[d.Name])
			}
			return nil
		},
	}
}
