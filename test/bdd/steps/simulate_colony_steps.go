package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/planetarysim/colonysim/internal/adapters/cache"
	"github.com/planetarysim/colonysim/internal/application/simulation"
	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/internal/domain/commodity"
)

type simulateColonyContext struct {
	colonyID    int64
	simTime     time.Time
	extractorID int64
	storageID   int64
	k           *colony.Colony
	handler     *simulation.SimulateColonyHandler
	result      *simulation.SimulateColonyResponse
	secondRun   *simulation.SimulateColonyResponse
	err         error
}

func InitializeSimulateColonyScenario(sc *godog.ScenarioContext) {
	c := &simulateColonyContext{}

	sc.Step(`^a colony at simulation time "([^"]*)"$`, c.aColonyAtSimulationTime)
	sc.Step(`^the colony has an active extractor producing type (\d+) every (\d+) minutes$`, c.theColonyHasAnActiveExtractor)
	sc.Step(`^I simulate the colony forward to "([^"]*)"$`, c.iSimulateTheColonyForwardTo)
	sc.Step(`^I simulate the same colony forward to "([^"]*)" again$`, c.iSimulateTheSameColonyForwardToAgain)
	sc.Step(`^the storage facility should hold some type \d+$`, c.theStorageFacilityShouldHoldSomeOutput)
	sc.Step(`^the storage facility should hold no type \d+$`, c.theStorageFacilityShouldHoldNoOutput)
	sc.Step(`^the second simulation should be served from the cache$`, c.theSecondSimulationShouldBeServedFromCache)

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		c.handler = simulation.NewSimulateColonyHandler(cache.New())
		c.err = nil
		c.result = nil
		c.secondRun = nil
		return ctx, nil
	})
}

func (c *simulateColonyContext) aColonyAtSimulationTime(rfc3339 string) error {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return err
	}
	c.simTime = t
	c.colonyID = 1
	c.k = colony.NewColony(c.colonyID, t)
	return nil
}

func (c *simulateColonyContext) theColonyHasAnActiveExtractor(productTypeID, cycleMinutes int) error {
	product, err := commodity.New(productTypeID, 1.0, fmt.Sprintf("type-%d", productTypeID))
	if err != nil {
		return err
	}

	c.extractorID = 100
	extractor := colony.NewFacility(c.extractorID, 2544, colony.KindExtractor)
	extractor.IsActive = true
	extractor.RegisterCommodity(product)
	extractor.Extractor = &colony.ExtractorState{
		ProductType: &product,
		BaseValue:   100,
		InstallTime: c.simTime,
		ExpiryTime:  c.simTime.Add(30 * 24 * time.Hour),
		CycleTime:   time.Duration(cycleMinutes) * time.Minute,
	}
	c.k.Pins[c.extractorID] = extractor

	c.storageID = 200
	storage := colony.NewFacility(c.storageID, 1029, colony.KindStorage)
	storage.RegisterCommodity(product)
	c.k.Pins[c.storageID] = storage

	route, err := colony.NewRoute(c.extractorID, c.storageID, product, 1_000_000)
	if err != nil {
		return err
	}
	return c.k.AddRoute(route)
}

func (c *simulateColonyContext) iSimulateTheColonyForwardTo(rfc3339 string) error {
	target, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return err
	}
	resp, err := c.handler.Handle(context.Background(), &simulation.SimulateColonyCommand{Colony: c.k, TargetTime: target})
	if err != nil {
		c.err = err
		return nil
	}
	c.result = resp.(*simulation.SimulateColonyResponse)
	return nil
}

func (c *simulateColonyContext) iSimulateTheSameColonyForwardToAgain(rfc3339 string) error {
	target, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return err
	}
	resp, err := c.handler.Handle(context.Background(), &simulation.SimulateColonyCommand{Colony: c.k, TargetTime: target})
	if err != nil {
		c.err = err
		return nil
	}
	c.secondRun = resp.(*simulation.SimulateColonyResponse)
	return nil
}

func (c *simulateColonyContext) theStorageFacilityShouldHoldSomeOutput() error {
	if c.err != nil {
		return fmt.Errorf("simulation should not have failed: %w", c.err)
	}
	storage, ok := c.result.Colony.Pins[c.storageID]
	if !ok {
		return fmt.Errorf("storage %d not found in result", c.storageID)
	}
	if storage.Contents[2268] <= 0 {
		return fmt.Errorf("expected storage to hold type 2268, got %d", storage.Contents[2268])
	}
	return nil
}

func (c *simulateColonyContext) theStorageFacilityShouldHoldNoOutput() error {
	if c.err != nil {
		return fmt.Errorf("simulation should not have failed: %w", c.err)
	}
	storage, ok := c.result.Colony.Pins[c.storageID]
	if !ok {
		return fmt.Errorf("storage %d not found in result", c.storageID)
	}
	if storage.Contents[2268] != 0 {
		return fmt.Errorf("expected storage to hold no type 2268, got %d", storage.Contents[2268])
	}
	return nil
}

func (c *simulateColonyContext) theSecondSimulationShouldBeServedFromCache() error {
	if c.err != nil {
		return fmt.Errorf("simulation should not have failed: %w", c.err)
	}
	if !c.secondRun.FromCache {
		return fmt.Errorf("expected second simulation to be served from cache")
	}
	return nil
}
