package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "rinkroster",
		Short: "CLI tool for the rinkroster lineup planner API",
		Long: `rinkroster is a CLI tool for the lineup planner JSON API.

It manages the team roster, per-game availability statuses, the ready list
and the tactical lineup, and exports printable game sheets and JSON backups.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: RINKROSTER_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLineupCmd())
	rootCmd.AddCommand(newReadyCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
