package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBalancesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show each member's balance, most indebted first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			balances := a.ledger.Balances(a.members.All())
			if len(balances) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, b := range balances {
				fmt.Fprintf(w, "%s\t%.2f EUR\n", b.Name, b.Balance)
			}
			return w.Flush()
		},
	}
}
