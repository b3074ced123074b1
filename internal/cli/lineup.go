package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseSlotArg(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("slot must be a number 0-15, got %q", arg)
	}
	return slot, nil
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Availability status commands",
	}

	cmd.AddCommand(newStatusSetCmd())

	return cmd
}

func newStatusSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <game-id> <player-id> <status>",
		Short: "Set a player's status: ready, not_ready, doubtful, survey, none",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": args[2]}

			var result Game

			path := fmt.Sprintf("/api/v1/games/%s/status/%s", args[0], args[1])
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLineupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Tactical lineup commands",
	}

	cmd.AddCommand(newLineupAssignCmd())
	cmd.AddCommand(newLineupClearCmd())

	return cmd
}

func newLineupAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <game-id> <slot> <player-id>",
		Short: "Assign a ready player to a lineup slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": args[2]}

			var result Game

			path := fmt.Sprintf("/api/v1/games/%s/lineup/%d", args[0], slot)
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLineupClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <game-id> <slot>",
		Short: "Clear a lineup slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s/lineup/%d", args[0], slot)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Cleared lineup slot %d", slot))
			return nil
		},
	}
}

func newReadyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ready",
		Short: "Ready list commands",
	}

	cmd.AddCommand(newReadyMoveCmd())
	cmd.AddCommand(newReadyRemoveCmd())

	return cmd
}

func newReadyMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <game-id> <from> <to>",
		Short: "Move a player between ready slots",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}
			to, err := parseSlotArg(args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"from": from, "to": to}

			var result Game

			path := fmt.Sprintf("/api/v1/games/%s/ready/move", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newReadyRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id> <slot>",
		Short: "Remove a player from the ready list, lineup and status map",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s/ready/%d", args[0], slot)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed ready slot %d", slot))
			return nil
		},
	}
}
