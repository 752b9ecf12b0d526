package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/planetarysim/colonysim/internal/adapters/api"
	"github.com/planetarysim/colonysim/internal/adapters/cache"
	"github.com/planetarysim/colonysim/internal/adapters/graph"
	"github.com/planetarysim/colonysim/internal/adapters/persistence"
	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/application/planetary"
	"github.com/planetarysim/colonysim/internal/application/schematicresolve"
	"github.com/planetarysim/colonysim/internal/application/simulation"
	"github.com/planetarysim/colonysim/internal/application/sitefinding"
	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/internal/infrastructure/config"
	"github.com/planetarysim/colonysim/internal/infrastructure/database"
	"gorm.io/gorm"
)

// loadColonyFile reads a JSON-serialized colony.Colony from path, the same
// snapshot shape the simulation cache persists and the remote API client
// would otherwise assemble from a live fetch.
func loadColonyFile(path string) (*colony.Colony, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read colony file %q: %w", path, err)
	}
	var k colony.Colony
	if err := json.Unmarshal(raw, &k); err != nil {
		return nil, fmt.Errorf("parse colony file %q: %w", path, err)
	}
	return &k, nil
}

// buildMediator wires the application handlers needed by the CLI against a
// live database connection, following the teacher's container.go
// dependency-wiring pattern.
func buildMediator(cfg *config.Config) (mediator.Mediator, *gorm.DB, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	m := mediator.New()

	simCache := cache.New()
	if err := mediator.RegisterHandler[*simulation.SimulateColonyCommand](m, simulation.NewSimulateColonyHandler(simCache)); err != nil {
		return nil, nil, err
	}
	if err := mediator.RegisterHandler[*simulation.GenerateSnapshotsCommand](m, simulation.NewGenerateSnapshotsHandler()); err != nil {
		return nil, nil, err
	}

	schematicRepo := persistence.NewGormSchematicRepository(db)
	typeRepo := persistence.NewGormTypeRepository(db)
	if err := mediator.RegisterHandler[*schematicresolve.ResolveBaseResourcesQuery](m, schematicresolve.NewResolveBaseResourcesHandler(schematicRepo, typeRepo)); err != nil {
		return nil, nil, err
	}

	systemCatalog := persistence.NewGormSystemCatalog(db)
	resourceTypes := persistence.NewGormResourcePlanetTypes(db)
	adjacency, err := graph.LoadFromFile(cfg.AdjacencyGraph.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load adjacency graph: %w", err)
	}
	if err := mediator.RegisterHandler[*sitefinding.FindSitesQuery](m, sitefinding.NewFindSitesHandler(systemCatalog, resourceTypes, adjacency)); err != nil {
		return nil, nil, err
	}

	apiClient := api.NewHTTPClient(
		cfg.API.BaseURL,
		cfg.API.RateLimit.RequestsPerSecond,
		cfg.API.RateLimit.Burst,
		cfg.API.CircuitBreaker.MaxFailures,
		cfg.API.CircuitBreaker.OpenTimeout,
	)
	if err := mediator.RegisterHandler[*planetary.FetchCharacterPlanetaryQuery](m, planetary.NewFetchCharacterPlanetaryHandler(apiClient)); err != nil {
		return nil, nil, err
	}
	if err := mediator.RegisterHandler[*planetary.FetchPlanetaryDetailQuery](m, planetary.NewFetchPlanetaryDetailHandler(apiClient)); err != nil {
		return nil, nil, err
	}
	if err := mediator.RegisterHandler[*planetary.AssembleColonyCommand](m, planetary.NewAssembleColonyHandler(apiClient, schematicRepo, typeRepo)); err != nil {
		return nil, nil, err
	}

	return m, db, nil
}
