package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgercheck/internal/runlog"
)

func newHistoryCommand(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past check runs from the run log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = a.cfg.Check.RunLog
			}
			if path == "" {
				return errors.New("no run log: set check.run_log in the config or pass --run-log")
			}

			entries, err := runlog.Read(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s  %-6d %-6d %-10s %s\n",
					e.Timestamp.Format(time.RFC3339), e.RunID, e.Entries, e.Errors, e.Duration, e.File)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "run-log", "", "run log to read (default: check.run_log from the config)")

	return cmd
}
