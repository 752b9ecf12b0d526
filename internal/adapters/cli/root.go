// Package cli implements the colonysim command surface: cobra subcommands
// that wire the application-layer mediator handlers to a human operator,
// following the teacher's one-file-per-command-group, NewXCommand()
// constructor convention.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// NewRootCommand creates the root colonysim command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colonysim",
		Short: "Colonysim CLI - planetary colony simulator and site finder",
		Long: `colonysim simulates EVE Online planetary industry colonies forward in
time and finds star systems able to produce a requested product.

Examples:
  colonysim fetch --character 1 --planet 4001 --output colony.json
  colonysim simulate --colony-file colony.json --to 2026-08-01T00:00:00Z
  colonysim snapshot --colony-file colony.json
  colonysim resolve --product 2312
  colonysim find-site --product 2312 --candidates 30000142,30000144 --max-jumps 3`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewFetchCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewSnapshotCommand())
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewFindSiteCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
