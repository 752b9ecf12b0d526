package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/planetarysim/colonysim/internal/application/simulation"
	"github.com/planetarysim/colonysim/internal/infrastructure/config"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand() *cobra.Command {
	var colonyFile string
	var targetTime string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance a colony snapshot forward to a target time",
		Long: `Advances a colony (read from --colony-file, a JSON snapshot) to
--to, printing the resulting facility states and overview.

Examples:
  colonysim simulate --colony-file colony.json --to 2026-08-01T00:00:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if colonyFile == "" {
				return fmt.Errorf("--colony-file flag is required")
			}
			if targetTime == "" {
				return fmt.Errorf("--to flag is required")
			}

			target, err := time.Parse(time.RFC3339, targetTime)
			if err != nil {
				return fmt.Errorf("parse --to: %w", err)
			}

			k, err := loadColonyFile(colonyFile)
			if err != nil {
				return err
			}

			cfg := config.LoadConfigOrDefault(configPath)
			m, db, err := buildMediator(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx := context.Background()
			if verbose {
				ctx = simulation.WithProgress(ctx, func(progress float64) {
					fmt.Printf("progress: %.0f%%\n", progress*100)
				})
			}

			resp, err := m.Send(ctx, &simulation.SimulateColonyCommand{Colony: k, TargetTime: target})
			if err != nil {
				return fmt.Errorf("simulate colony: %w", err)
			}

			result := resp.(*simulation.SimulateColonyResponse)
			fmt.Print(NewTreeFormatter().FormatColony(result.Colony))
			if result.FromCache {
				fmt.Println("(served from simulation cache)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colonyFile, "colony-file", "", "Path to a JSON colony snapshot")
	cmd.Flags().StringVar(&targetTime, "to", "", "Target simulation time (RFC3339)")

	return cmd
}
