package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game record commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameSetCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameSheetCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games, newest date first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new game with default title and today's date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSetCmd() *cobra.Command {
	fields := []string{"title", "date", "time", "weekday", "stadium", "score", "points", "color"}
	values := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:   "set <game-id>",
		Short: "Update a game's descriptive fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send flags the user actually set
			req := make(map[string]string)
			for _, field := range fields {
				if cmd.Flags().Changed(field) {
					req[field] = *values[field]
				}
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update, pass at least one field flag")
			}

			var result Game

			if err := client.Patch(fmt.Sprintf("/api/v1/games/%s", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	for _, field := range fields {
		values[field] = cmd.Flags().String(field, "", "Set the game "+field)
	}

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}

func newGameSheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheet <game-id>",
		Short: "Print the game sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := client.DoText("GET", fmt.Sprintf("/api/v1/games/%s/sheet", args[0]))
			if err != nil {
				return err
			}

			fmt.Print(sheet)
			return nil
		},
	}
}
