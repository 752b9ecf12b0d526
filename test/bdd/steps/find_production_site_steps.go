package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/planetarysim/colonysim/internal/adapters/graph"
	"github.com/planetarysim/colonysim/internal/adapters/persistence"
	"github.com/planetarysim/colonysim/internal/application/schematicresolve"
	"github.com/planetarysim/colonysim/internal/application/sitefinding"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
	"github.com/planetarysim/colonysim/internal/domain/sitefinder"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
)

type findProductionSiteContext struct {
	db            *gorm.DB
	resolveHandler *schematicresolve.ResolveBaseResourcesHandler
	baseResources  []schematic.BaseResource
	sites          []sitefinder.SiteResult
	neighbourDir   string
	err            error
}

func InitializeFindProductionSiteScenario(sc *godog.ScenarioContext) {
	c := &findProductionSiteContext{}

	sc.Step(`^a schematic where product (\d+) is produced from base resource (\d+)$`, c.aSchematicWhereProductIsProducedFromBaseResource)
	sc.Step(`^base resource (\d+) is harvested from planet type "([^"]*)"$`, c.baseResourceIsHarvestedFromPlanetType)
	sc.Step(`^system (\d+) has (\d+) gas planets and system (\d+) has no gas planets$`, c.systemHasGasPlanetsAndSystemHasNone)
	sc.Step(`^system (\d+) has no gas planets and system (\d+) has (\d+) gas planet$`, c.systemHasNoGasPlanetsAndSystemHasGasPlanets)
	sc.Step(`^system (\d+) is one jump away from system (\d+)$`, c.systemIsOneJumpAwayFromSystem)
	sc.Step(`^I resolve base resources for product (\d+)$`, c.iResolveBaseResourcesForProduct)
	sc.Step(`^I find sites among systems? (\d+)(?:\s+and\s+(\d+))? with max jumps (\d+) and top (\d+)$`, c.iFindSitesAmongSystemsWithMaxJumpsAndTop)
	sc.Step(`^system (\d+) should be the top ranked site$`, c.systemShouldBeTheTopRankedSite)
	sc.Step(`^system (\d+) should not appear in the results$`, c.systemShouldNotAppearInResults)

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		db, err := database.NewTestConnection()
		if err != nil {
			return ctx, err
		}
		c.db = db
		c.neighbourDir = ""
		c.err = nil
		c.sites = nil
		c.baseResources = nil
		return ctx, nil
	})

	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		if c.db != nil {
			database.Close(c.db)
		}
		return ctx, nil
	})
}

func (c *findProductionSiteContext) aSchematicWhereProductIsProducedFromBaseResource(productTypeID, baseResourceTypeID int) error {
	return c.db.Create(&persistence.PlanetSchematicModel{
		OutputTypeID: productTypeID,
		OutputValue:  1,
		CycleTime:    3600,
		InputTypeID:  fmt.Sprintf("%d", baseResourceTypeID),
		InputValue:   "1",
		Facilitys:    "2544",
	}).Error
}

func (c *findProductionSiteContext) baseResourceIsHarvestedFromPlanetType(resourceTypeID int, planetType string) error {
	planetTypeID, err := planetTypeIDForName(planetType)
	if err != nil {
		return err
	}
	harvestTypeID := resourceTypeID + 900000
	if err := c.db.Create(&persistence.PlanetResourceHarvestModel{
		TypeID:        resourceTypeID,
		HarvestTypeID: harvestTypeID,
	}).Error; err != nil {
		return err
	}
	return c.db.Create(&persistence.TypeAttributeModel{
		TypeID:      harvestTypeID,
		AttributeID: persistence.PlanetTypeAttributeID,
		Value:       float64(planetTypeID),
	}).Error
}

func planetTypeIDForName(name string) (int, error) {
	switch name {
	case "gas":
		return sitefinder.PlanetTypeGas, nil
	case "ice":
		return sitefinder.PlanetTypeIce, nil
	case "temperate":
		return sitefinder.PlanetTypeTemperate, nil
	case "barren":
		return sitefinder.PlanetTypeBarren, nil
	default:
		return 0, fmt.Errorf("unknown planet type %q", name)
	}
}

func (c *findProductionSiteContext) systemHasGasPlanetsAndSystemHasNone(systemWithGas, gasCount, systemWithoutGas int) error {
	if err := c.db.Create(&persistence.UniverseModel{SolarSystemID: systemWithGas, Gas: gasCount}).Error; err != nil {
		return err
	}
	return c.db.Create(&persistence.UniverseModel{SolarSystemID: systemWithoutGas, Gas: 0}).Error
}

func (c *findProductionSiteContext) systemHasNoGasPlanetsAndSystemHasGasPlanets(systemWithoutGas, systemWithGas, gasCount int) error {
	if err := c.db.Create(&persistence.UniverseModel{SolarSystemID: systemWithoutGas, Gas: 0}).Error; err != nil {
		return err
	}
	return c.db.Create(&persistence.UniverseModel{SolarSystemID: systemWithGas, Gas: gasCount}).Error
}

func (c *findProductionSiteContext) systemIsOneJumpAwayFromSystem(neighbour, origin int) error {
	dir, err := os.MkdirTemp("", "adjacency")
	if err != nil {
		return err
	}
	c.neighbourDir = dir
	path := filepath.Join(dir, "adjacency.json")
	contents := fmt.Sprintf(`{"%d": [%d], "%d": [%d]}`, origin, neighbour, neighbour, origin)
	return os.WriteFile(path, []byte(contents), 0o644)
}

func (c *findProductionSiteContext) iResolveBaseResourcesForProduct(productTypeID int) error {
	schematicRepo := persistence.NewGormSchematicRepository(c.db)
	typeRepo := persistence.NewGormTypeRepository(c.db)
	c.resolveHandler = schematicresolve.NewResolveBaseResourcesHandler(schematicRepo, typeRepo)

	resp, err := c.resolveHandler.Handle(context.Background(), &schematicresolve.ResolveBaseResourcesQuery{TargetTypeID: productTypeID})
	if err != nil {
		c.err = err
		return nil
	}
	c.baseResources = resp.(*schematicresolve.ResolveBaseResourcesResponse).BaseResources
	return nil
}

func (c *findProductionSiteContext) iFindSitesAmongSystemsWithMaxJumpsAndTop(firstSystem int, secondSystem string, maxJumps, topN int) error {
	candidates := []int{firstSystem}
	if secondSystem != "" {
		second, err := strconv.Atoi(secondSystem)
		if err != nil {
			return err
		}
		candidates = append(candidates, second)
	}

	required := make([]int, len(c.baseResources))
	for i, r := range c.baseResources {
		required[i] = r.TypeID
	}

	catalog := persistence.NewGormSystemCatalog(c.db)
	resourceTypes := persistence.NewGormResourcePlanetTypes(c.db)

	var adjacency sitefinder.AdjacencyGraph
	if c.neighbourDir != "" {
		g, err := graph.LoadFromFile(filepath.Join(c.neighbourDir, "adjacency.json"))
		if err != nil {
			return err
		}
		adjacency = g
	} else {
		emptyDir, err := os.MkdirTemp("", "adjacency-empty")
		if err != nil {
			return err
		}
		path := filepath.Join(emptyDir, "adjacency.json")
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			return err
		}
		g, err := graph.LoadFromFile(path)
		if err != nil {
			return err
		}
		adjacency = g
	}

	handler := sitefinding.NewFindSitesHandler(catalog, resourceTypes, adjacency)
	resp, err := handler.Handle(context.Background(), &sitefinding.FindSitesQuery{
		Candidates:        candidates,
		RequiredResources: required,
		MaxJumps:          maxJumps,
		TopN:              topN,
	})
	if err != nil {
		c.err = err
		return nil
	}
	c.sites = resp.(*sitefinding.FindSitesResponse).Sites
	return nil
}

func (c *findProductionSiteContext) systemShouldBeTheTopRankedSite(systemID int) error {
	if c.err != nil {
		return fmt.Errorf("find sites should not have failed: %w", c.err)
	}
	if len(c.sites) == 0 {
		return fmt.Errorf("expected at least one ranked site")
	}
	if c.sites[0].SystemID != systemID {
		return fmt.Errorf("expected system %d to be top ranked, got %d", systemID, c.sites[0].SystemID)
	}
	return nil
}

func (c *findProductionSiteContext) systemShouldNotAppearInResults(systemID int) error {
	for _, s := range c.sites {
		if s.SystemID == systemID {
			return fmt.Errorf("expected system %d to be absent from results", systemID)
		}
	}
	return nil
}
