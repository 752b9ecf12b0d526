// Package remote defines the domain's port onto the character planetary
// interaction API (§6.3). It is defined in the domain layer, not
// infrastructure, so application handlers depend only on an interface; the
// infrastructure layer supplies the concrete HTTP client.
package remote

import (
	"context"
	"time"
)

// APIClient is the domain's interface for interacting with the remote
// character planetary API.
type APIClient interface {
	FetchCharacterPlanetary(ctx context.Context, characterID int64, forceRefresh bool) ([]PlanetSummary, error)
	FetchPlanetaryDetail(ctx context.Context, characterID int64, planetID int64, forceRefresh bool) (*PlanetDetail, error)
}

// PlanetSummary is one entry of the character's colonised planets list.
type PlanetSummary struct {
	PlanetID    int64
	PlanetType  string
	SolarSystem int64
	UpgradeLevel int
	NumPins     int
}

// PlanetDetail is the full planetary layout returned for a single planet:
// every pin, the routes between them, the links grouping pins, and the
// server's notion of "now" for that snapshot.
type PlanetDetail struct {
	Pins           []PinData
	Routes         []RouteData
	Links          []LinkData
	CurrentSimTime time.Time
}

// PinData is the wire representation of one facility.
type PinData struct {
	PinID              int64
	TypeID             int
	SchematicID        *int
	LastCycleStartTime *time.Time
	ContentsTypeID     []int
	ContentsAmount     []int64
	ExtractorDetail    *ExtractorDetailData
}

// ExtractorDetailData is the wire representation of an extractor's program
// state.
type ExtractorDetailData struct {
	ProductTypeID int
	InstallTime   time.Time
	ExpiryTime    time.Time
	CycleTime     int64 // seconds
	QtyPerCycle   int64
	HeadRadius    float64
}

// RouteData is the wire representation of one route between two pins.
type RouteData struct {
	SourcePinID      int64
	DestinationPinID int64
	ContentTypeID    int
	Quantity         int64
}

// LinkData groups two pins into a transport link (unused by the simulator
// itself, carried through so callers can render the layout).
type LinkData struct {
	SourcePinID      int64
	DestinationPinID int64
}
