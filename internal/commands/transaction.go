package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

const dateLayout = "2006-01-02"

func newTransactionCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
	}

	cmd.AddCommand(newTransactionAddCommand(configPath))

	return cmd
}

func newTransactionAddCommand(configPath *string) *cobra.Command {
	var amount float64
	var payer string
	var beneficiaries []string
	var description string
	var date string
	var asUser string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense split equally among beneficiaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			when := time.Now()
			if date != "" {
				when, err = time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("parsing date: %w", err)
				}
			}

			if isBackdated(when, time.Now()) {
				if asUser == "" {
					return fmt.Errorf("recording past transactions requires --as naming an admin")
				}
				u, ok := a.users.ByUsername(asUser)
				if !ok {
					return fmt.Errorf("unknown user %q", asUser)
				}
				if !u.Admin() {
					return fmt.Errorf("user %q may not record past transactions", asUser)
				}
			}

			p, ok := a.members.ByName(payer)
			if !ok {
				return fmt.Errorf("unknown payer %q", payer)
			}
			bs := make([]*models.Member, 0, len(beneficiaries))
			for _, name := range beneficiaries {
				b, ok := a.members.ByName(name)
				if !ok {
					return fmt.Errorf("unknown beneficiary %q", name)
				}
				bs = append(bs, b)
			}

			t, err := models.NewTransaction(when, amount, p, bs, description)
			if err != nil {
				return err
			}
			if err := a.ledger.AddTransaction(t); err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", t)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in EUR (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&payer, "payer", "", "member who paid (required)")
	_ = cmd.MarkFlagRequired("payer")
	cmd.Flags().StringSliceVar(&beneficiaries, "beneficiaries", nil, "members the expense is split among (required)")
	_ = cmd.MarkFlagRequired("beneficiaries")
	cmd.Flags().StringVar(&description, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&date, "date", "", "transaction date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&asUser, "as", "", "acting username, required to record past dates")

	return cmd
}

// isBackdated reports whether when falls on a calendar day before now.
func isBackdated(when, now time.Time) bool {
	y1, m1, d1 := when.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
