package colony

import "fmt"

// InvalidRouteError reports a route that fails the source/destination or
// quantity invariant of §3.3.
type InvalidRouteError struct {
	SourceID      int64
	DestinationID int64
	Reason        string
}

func NewInvalidRouteError(sourceID, destinationID int64, reason string) *InvalidRouteError {
	return &InvalidRouteError{SourceID: sourceID, DestinationID: destinationID, Reason: reason}
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route %d->%d: %s", e.SourceID, e.DestinationID, e.Reason)
}

// UnknownFacilityError is returned when a route or schedule references a
// facility id not present in the colony's pins.
type UnknownFacilityError struct {
	FacilityID int64
}

func NewUnknownFacilityError(facilityID int64) *UnknownFacilityError {
	return &UnknownFacilityError{FacilityID: facilityID}
}

func (e *UnknownFacilityError) Error() string {
	return fmt.Sprintf("unknown facility id %d", e.FacilityID)
}
