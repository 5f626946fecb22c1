package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/auth"
	"github.com/JonaJoost/wg-abrechner/internal/service"
)

func newLoginCommand(configPath *string) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and show the debt advisory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			u, ok := a.users.ByUsername(username)
			if !ok {
				return fmt.Errorf("unknown user %q", username)
			}

			lm := service.NewLoginManager(a.rules, slog.Default())
			msg, err := lm.Login(u, auth.HashPassword(password))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
