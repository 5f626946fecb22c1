package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

func newHistoryCommand(configPath *string) *cobra.Command {
	var byAmount bool
	var stale bool
	var onDate string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			var txs []*models.Transaction
			switch {
			case onDate != "":
				day, err := time.Parse(dateLayout, onDate)
				if err != nil {
					return fmt.Errorf("parsing date: %w", err)
				}
				txs = a.ledger.FindByDate(day)
			case stale:
				txs = a.ledger.StaleUnsettled(time.Now(), a.rules.MaxLendDays())
			case byAmount:
				txs = a.ledger.SortedByAmount()
			default:
				txs = a.ledger.SortedByDate()
			}

			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}
			for _, t := range txs {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byAmount, "by-amount", false, "sort by amount, largest first")
	cmd.Flags().BoolVar(&stale, "stale", false, "only unsettled transactions older than the lend limit")
	cmd.Flags().StringVar(&onDate, "date", "", "only transactions on this day (YYYY-MM-DD)")

	return cmd
}
