package cli

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/application/schematicresolve"
	"github.com/planetarysim/colonysim/internal/infrastructure/config"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	var productTypeID int

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the base (P0) resources behind a target product",
		Long: `Performs the breadth-first schematic expansion of §4.13, printing
every base resource reachable from --product, sorted by depth ascending.

Examples:
  colonysim resolve --product 2312`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if productTypeID == 0 {
				return fmt.Errorf("--product flag is required")
			}

			cfg := config.LoadConfigOrDefault(configPath)
			m, db, err := buildMediator(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			resp, err := m.Send(context.Background(), &schematicresolve.ResolveBaseResourcesQuery{TargetTypeID: productTypeID})
			if err != nil {
				return fmt.Errorf("resolve base resources: %w", err)
			}

			result := resp.(*schematicresolve.ResolveBaseResourcesResponse)
			if len(result.BaseResources) == 0 {
				fmt.Println("no base resources found")
				return nil
			}
			for _, r := range result.BaseResources {
				fmt.Printf("depth=%d type=%d name=%s\n", r.Depth, r.TypeID, r.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&productTypeID, "product", 0, "Target product type id")

	return cmd
}
