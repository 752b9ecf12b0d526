package colony

import "github.com/planetarysim/colonysim/internal/domain/commodity"

// Route is a standing transfer agreement between two facilities in the same
// colony: up to quantity units of commodity may move from source to
// destination per transfer pass. Duplicate routes between the same pair are
// permitted (§3.3).
type Route struct {
	SourceID      int64
	DestinationID int64
	Commodity     commodity.Type
	Quantity      int64
}

// NewRoute validates and constructs a Route. SourceID and DestinationID must
// differ, and Quantity must be at least 1.
func NewRoute(sourceID, destinationID int64, c commodity.Type, quantity int64) (Route, error) {
	if sourceID == destinationID {
		return Route{}, NewInvalidRouteError(sourceID, destinationID, "source and destination must differ")
	}
	if quantity < 1 {
		return Route{}, NewInvalidRouteError(sourceID, destinationID, "quantity must be at least 1")
	}
	return Route{
		SourceID:      sourceID,
		DestinationID: destinationID,
		Commodity:     c,
		Quantity:      quantity,
	}, nil
}
