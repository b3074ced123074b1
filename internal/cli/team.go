package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamAddCmd())
	cmd.AddCommand(newTeamEditCmd())
	cmd.AddCommand(newTeamRemoveCmd())
	cmd.AddCommand(newTeamSeedCmd())

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the team roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/team", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamAddCmd() *cobra.Command {
	var (
		name     string
		number   int
		position string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":     name,
				"number":   number,
				"position": position,
			}

			var result Player

			if err := client.Post("/api/v1/team", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&number, "number", 0, "Jersey number (0 = unknown)")
	cmd.Flags().StringVar(&position, "position", "", "Position: goalie, forward, defender (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}

func newTeamEditCmd() *cobra.Command {
	var (
		name     string
		number   int
		position string
	)

	cmd := &cobra.Command{
		Use:   "edit <player-id>",
		Short: "Edit a roster player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":     name,
				"number":   number,
				"position": position,
			}

			var result Player

			if err := client.Patch(fmt.Sprintf("/api/v1/team/%s", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&number, "number", 0, "Jersey number (0 = unknown)")
	cmd.Flags().StringVar(&position, "position", "", "Position: goalie, forward, defender (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster and every game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/team/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed player %s", args[0]))
			return nil
		},
	}
}

func newTeamSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default roster if the team is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Post("/api/v1/team/seed", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
