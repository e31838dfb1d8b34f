package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgercheck/internal/accounts"
	"github.com/cleared-dev/ledgercheck/internal/model"
	"github.com/cleared-dev/ledgercheck/internal/options"
)

func newAccountsCommand(a *app) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "accounts FILE",
		Short: "Show the account roots, special accounts and opened accounts of a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.process(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asCSV {
				return accounts.WriteAccounts(out, p.result.Accounts.All())
			}
			printAccounts(out, p.result.Options, p.result.Accounts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write opened accounts as CSV")

	return cmd
}

func printAccounts(out io.Writer, cfg *options.Config, opened *accounts.Service) {
	types := options.GetAccountTypes(cfg)

	fmt.Fprintln(out, "roots:")
	for _, at := range model.AccountTypes {
		fmt.Fprintf(out, "  %-10s %s\n", at, types.Root(at))
	}

	fmt.Fprintln(out, "previous:")
	for _, name := range options.GetPreviousAccounts(cfg) {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "current:")
	for _, name := range options.GetCurrentAccounts(cfg) {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "opened:")
	for _, at := range model.AccountTypes {
		for _, acct := range opened.ByType(at) {
			fmt.Fprintf(out, "  %-10s %s  %s\n", at, acct.Opened.Format("2006-01-02"), acct.Name)
		}
	}
}
