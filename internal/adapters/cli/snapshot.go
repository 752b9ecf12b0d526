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

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand() *cobra.Command {
	var colonyFile string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Generate a compressed timeline of colony snapshots until halt or 30 days",
		Long: `Generates a timeline for a colony snapshot, sampled every half of the
shortest running cycle time (0.1 h when nothing runs), per §4.12, stopping at extractor expiry, colony halt, or 30 days, whichever
comes first.

Examples:
  colonysim snapshot --colony-file colony.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if colonyFile == "" {
				return fmt.Errorf("--colony-file flag is required")
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

			resp, err := m.Send(context.Background(), &simulation.GenerateSnapshotsCommand{
				Colony:     k,
				MaxCount:   cfg.Simulation.SnapshotCap,
				MaxHorizon: time.Duration(cfg.Simulation.DefaultHorizonHours) * time.Hour,
			})
			if err != nil {
				return fmt.Errorf("generate snapshots: %w", err)
			}

			result := resp.(*simulation.GenerateSnapshotsResponse)
			fmt.Printf("%d snapshots generated\n", len(result.Snapshots))
			formatter := NewTreeFormatter()
			for _, snap := range result.Snapshots {
				fmt.Printf("--- t+%dmin ---\n", snap.ElapsedMinutes)
				fmt.Print(formatter.FormatColony(snap.Colony))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colonyFile, "colony-file", "", "Path to a JSON colony snapshot")

	return cmd
}
