package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Backup export and import commands",
	}

	cmd.AddCommand(newBackupExportCmd())
	cmd.AddCommand(newBackupImportCmd())

	return cmd
}

func newBackupExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster and all games as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BackupFile

			if err := client.Get("/api/v1/backup", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)

			if file != "" {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(file, data, 0o644); err != nil {
					return err
				}
				out.PrintMessage(fmt.Sprintf("Backup written to %s", file))
				return nil
			}

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write the backup to a file instead of stdout")

	return cmd
}

func newBackupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore the roster and games from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			// Send the file as-is so the server does the validation
			var raw json.RawMessage = data
			if err := client.Do(http.MethodPost, "/api/v1/backup/restore", raw, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Backup restored")
			return nil
		},
	}
}
