package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/auth"
	"github.com/JonaJoost/wg-abrechner/internal/models"
)

func newUserCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login users",
	}

	cmd.AddCommand(newUserAddCommand(configPath))
	cmd.AddCommand(newUserListCommand(configPath))

	return cmd
}

func newUserAddCommand(configPath *string) *cobra.Command {
	var name string
	var username string
	var password string
	var member string
	var admin bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a login user, optionally linked to a member's account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			u, err := models.NewUser(name, username, auth.HashPassword(password), admin)
			if err != nil {
				return err
			}
			if member != "" {
				m, ok := a.members.ByName(member)
				if !ok {
					return fmt.Errorf("unknown member %q", member)
				}
				u.LinkAccount(m.Account())
			}
			if err := a.users.Add(u); err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s\n", u)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")
	cmd.Flags().StringVar(&member, "member", "", "member whose account this user sees at login")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant admin rights")

	return cmd
}

func newUserListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List login users in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			for _, u := range a.users.All() {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
