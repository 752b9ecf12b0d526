package planetary

import (
	"context"
	"fmt"
	"time"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/internal/domain/commodity"
	"github.com/planetarysim/colonysim/internal/domain/remote"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
)

// AssembleColonyCommand fetches a character's live planetary layout and
// converts it into a colony.Colony ready for simulation (§3.6: "facilities
// are created from an external snapshot at colony load").
type AssembleColonyCommand struct {
	CharacterID  int64
	PlanetID     int64
	ForceRefresh bool
}

// AssembleColonyResponse carries the assembled colony.
type AssembleColonyResponse struct {
	Colony *colony.Colony
}

// AssembleColonyHandler builds a colony.Colony from remote.PlanetDetail,
// resolving each factory pin's full recipe through schematic.Catalog and
// each commodity's volume through commodity.VolumeLookup for capacity
// accounting.
type AssembleColonyHandler struct {
	client     remote.APIClient
	schematics schematic.Catalog
	volumes    commodity.VolumeLookup
}

func NewAssembleColonyHandler(client remote.APIClient, schematics schematic.Catalog, volumes commodity.VolumeLookup) *AssembleColonyHandler {
	return &AssembleColonyHandler{client: client, schematics: schematics, volumes: volumes}
}

func (h *AssembleColonyHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	command, ok := request.(*AssembleColonyCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	detail, err := h.client.FetchPlanetaryDetail(ctx, command.CharacterID, command.PlanetID, command.ForceRefresh)
	if err != nil {
		return nil, err
	}

	k := colony.NewColony(command.PlanetID, detail.CurrentSimTime)

	for _, pin := range detail.Pins {
		facility, err := h.assembleFacility(ctx, pin, detail.CurrentSimTime)
		if err != nil {
			return nil, err
		}
		k.Pins[facility.ID] = facility
	}

	for _, r := range detail.Routes {
		c, err := h.resolveCommodity(ctx, r.ContentTypeID)
		if err != nil {
			return nil, err
		}
		route, err := colony.NewRoute(r.SourcePinID, r.DestinationPinID, c, r.Quantity)
		if err != nil {
			// InvalidRoute (§7): skip the malformed route, keep the rest.
			continue
		}
		if err := k.AddRoute(route); err != nil {
			// UnknownFacility (§7): the route references a pin absent from
			// this snapshot — skip it rather than failing the whole load.
			continue
		}
	}

	return &AssembleColonyResponse{Colony: k}, nil
}

// assembleFacility classifies a pin's Kind from the signals its DTO
// actually carries (an ExtractorDetail payload means Extractor, a
// SchematicID means Factory), since the retrieved static schema has no
// facility-type classification table of its own. A pin with neither is
// treated as Storage, the most common storage-class variant — the §9 Open
// Question this resolves: Launchpad/CommandCenter can't be told apart from
// Storage without that table, so they share Storage's capacity (12000 m³)
// until one is added.
func (h *AssembleColonyHandler) assembleFacility(ctx context.Context, pin remote.PinData, currentSimTime time.Time) (*colony.Facility, error) {
	kind := colony.KindStorage
	switch {
	case pin.ExtractorDetail != nil:
		kind = colony.KindExtractor
	case pin.SchematicID != nil:
		kind = colony.KindFactory
	}

	facility := colony.NewFacility(pin.PinID, pin.TypeID, kind)
	facility.LastRunTime = pin.LastCycleStartTime

	switch kind {
	case colony.KindExtractor:
		product, err := h.resolveCommodity(ctx, pin.ExtractorDetail.ProductTypeID)
		if err != nil {
			return nil, err
		}
		facility.RegisterCommodity(product)
		facility.IsActive = pin.ExtractorDetail.ExpiryTime.After(currentSimTime)
		facility.Extractor = &colony.ExtractorState{
			ProductType: &product,
			BaseValue:   int(pin.ExtractorDetail.QtyPerCycle),
			InstallTime: pin.ExtractorDetail.InstallTime,
			ExpiryTime:  pin.ExtractorDetail.ExpiryTime,
			CycleTime:   time.Duration(pin.ExtractorDetail.CycleTime) * time.Second,
		}

	case colony.KindFactory:
		recipe, err := h.schematics.SchematicForOutput(ctx, *pin.SchematicID)
		if err != nil {
			// StaticDataMissing (§7): the pin keeps its contents but runs
			// no recipe until the schematic can be resolved.
			recipe = nil
		}
		if recipe != nil {
			facility.RegisterCommodity(recipe.OutputType())
			for c := range recipe.Inputs() {
				facility.RegisterCommodity(c)
			}
		}
		facility.IsActive = pin.LastCycleStartTime != nil
		facility.Factory = &colony.FactoryState{
			Schematic:          recipe,
			LastCycleStartTime: pin.LastCycleStartTime,
		}

	default:
		facility.IsActive = true
	}

	for i, typeID := range pin.ContentsTypeID {
		if i >= len(pin.ContentsAmount) {
			break
		}
		c, err := h.resolveCommodity(ctx, typeID)
		if err != nil {
			return nil, err
		}
		facility.RegisterCommodity(c)
		facility.Contents[typeID] = pin.ContentsAmount[i]
		facility.CapacityUsed += c.Volume() * float64(pin.ContentsAmount[i])
	}

	return facility, nil
}

func (h *AssembleColonyHandler) resolveCommodity(ctx context.Context, typeID int) (commodity.Type, error) {
	volume, _, err := h.volumes.Volume(ctx, typeID)
	if err != nil {
		return commodity.Type{}, fmt.Errorf("resolve commodity %d: %w", typeID, err)
	}
	return commodity.New(typeID, volume, fmt.Sprintf("type-%d", typeID))
}
