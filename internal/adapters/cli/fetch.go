package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/planetarysim/colonysim/internal/application/planetary"
	"github.com/planetarysim/colonysim/internal/infrastructure/config"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand() *cobra.Command {
	var characterID int64
	var planetID int64
	var forceRefresh bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a character's live planetary layout and assemble a colony",
		Long: `Fetches --planet's full pin/route layout from the remote character
planetary API (§6.3) and assembles it into a colony.Colony, the "facilities
are created from an external snapshot at colony load" path (§3.6). Prints
the assembled colony, or writes it as JSON to --output for later use with
'simulate'/'snapshot' --colony-file.

Examples:
  colonysim fetch --character 1 --planet 4001 --output colony.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if characterID == 0 {
				return fmt.Errorf("--character flag is required")
			}
			if planetID == 0 {
				return fmt.Errorf("--planet flag is required")
			}

			cfg := config.LoadConfigOrDefault(configPath)
			m, db, err := buildMediator(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			resp, err := m.Send(context.Background(), &planetary.AssembleColonyCommand{
				CharacterID:  characterID,
				PlanetID:     planetID,
				ForceRefresh: forceRefresh,
			})
			if err != nil {
				return fmt.Errorf("fetch colony: %w", err)
			}
			result := resp.(*planetary.AssembleColonyResponse)

			if outputFile != "" {
				raw, err := json.MarshalIndent(result.Colony, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal colony: %w", err)
				}
				if err := os.WriteFile(outputFile, raw, 0o644); err != nil {
					return fmt.Errorf("write %q: %w", outputFile, err)
				}
				fmt.Printf("wrote colony snapshot to %s\n", outputFile)
				return nil
			}

			fmt.Print(NewTreeFormatter().FormatColony(result.Colony))
			return nil
		},
	}

	cmd.Flags().Int64Var(&characterID, "character", 0, "Character id owning the planet")
	cmd.Flags().Int64Var(&planetID, "planet", 0, "Planet id to fetch")
	cmd.Flags().BoolVar(&forceRefresh, "force-refresh", false, "Ask the remote API to bypass its cached response")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write the assembled colony as JSON to this path instead of printing it")

	return cmd
}
