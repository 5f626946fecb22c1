package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

func newMemberCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage household members",
	}

	cmd.AddCommand(newMemberAddCommand(configPath))
	cmd.AddCommand(newMemberListCommand(configPath))
	cmd.AddCommand(newMemberSearchCommand(configPath))

	return cmd
}

func newMemberAddCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a member with a fresh account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			m, err := models.NewMember(args[0])
			if err != nil {
				return err
			}
			if err := a.members.Add(m); err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added member %s\n", m.Name())
			return nil
		},
	}
}

func newMemberListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			members := a.members.SortedByName()
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members yet.")
				return nil
			}
			for _, m := range members {
				fmt.Fprintln(cmd.OutOrStdout(), m.Name())
			}
			return nil
		},
	}
}

func newMemberSearchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find members by partial name match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			matches := a.members.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No members match %q.\n", args[0])
				return nil
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m.Name())
			}
			return nil
		},
	}
}
