package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/planetarysim/colonysim/internal/application/schematicresolve"
	"github.com/planetarysim/colonysim/internal/application/sitefinding"
	"github.com/planetarysim/colonysim/internal/infrastructure/config"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

// NewFindSiteCommand creates the find-site command.
func NewFindSiteCommand() *cobra.Command {
	var productTypeID int
	var candidatesCSV string
	var maxJumps int
	var topN int
	var sovereigntyFiltered bool

	cmd := &cobra.Command{
		Use:   "find-site",
		Short: "Find candidate systems able to (locally or within N jumps) produce a product",
		Long: `Resolves --product's base resources (§4.13), then scores every
--candidates system by local coverage plus neighbour BFS within --max-jumps
(§4.14), printing the top N ranked results.

Examples:
  colonysim find-site --product 2312 --candidates 30000142,30000144 --max-jumps 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if productTypeID == 0 {
				return fmt.Errorf("--product flag is required")
			}
			candidates, err := parseIntCSV(candidatesCSV)
			if err != nil {
				return fmt.Errorf("parse --candidates: %w", err)
			}
			if len(candidates) == 0 {
				return fmt.Errorf("--candidates flag is required")
			}

			cfg := config.LoadConfigOrDefault(configPath)
			m, db, err := buildMediator(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx := context.Background()
			resolveResp, err := m.Send(ctx, &schematicresolve.ResolveBaseResourcesQuery{TargetTypeID: productTypeID})
			if err != nil {
				return fmt.Errorf("resolve base resources: %w", err)
			}
			baseResources := resolveResp.(*schematicresolve.ResolveBaseResourcesResponse).BaseResources

			required := make([]int, len(baseResources))
			for i, r := range baseResources {
				required[i] = r.TypeID
			}

			if maxJumps == 0 {
				maxJumps = cfg.SiteFinder.DefaultMaxJumps
			}
			if topN == 0 {
				topN = cfg.SiteFinder.DefaultTopN
				if sovereigntyFiltered {
					topN = cfg.SiteFinder.SovereigntyTopN
				}
			}

			findResp, err := m.Send(ctx, &sitefinding.FindSitesQuery{
				Candidates:        candidates,
				RequiredResources: required,
				MaxJumps:          maxJumps,
				TopN:              topN,
			})
			if err != nil {
				return fmt.Errorf("find sites: %w", err)
			}

			sites := findResp.(*sitefinding.FindSitesResponse).Sites
			if len(sites) == 0 {
				fmt.Println("no candidate system satisfies every required resource")
				return nil
			}
			for _, s := range sites {
				fmt.Printf("system=%d score=%.1f available=%v neighbour_jumps=%v\n", s.SystemID, s.Score, s.Available, s.NeighbourJumps)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&productTypeID, "product", 0, "Target product type id")
	cmd.Flags().StringVar(&candidatesCSV, "candidates", "", "Comma-separated candidate solar system ids")
	cmd.Flags().IntVar(&maxJumps, "max-jumps", 0, "Maximum neighbour jumps (defaults from config)")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of ranked results to return (defaults from config)")
	cmd.Flags().BoolVar(&sovereigntyFiltered, "sovereignty-filtered", false, "Use the sovereignty-filtered default top-N (10 instead of 20)")

	return cmd
}

func parseIntCSV(csv string) ([]int, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
