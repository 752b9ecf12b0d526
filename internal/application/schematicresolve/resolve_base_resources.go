// Package schematicresolve wires the schematic resolver (§4.13) to the
// mediator so CLI and future API adapters can invoke it as a plain query.
package schematicresolve

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
)

// ResolveBaseResourcesQuery asks for the base resource chain behind a
// target product type.
type ResolveBaseResourcesQuery struct {
	TargetTypeID int
}

// ResolveBaseResourcesResponse carries the resolved base resources.
type ResolveBaseResourcesResponse struct {
	BaseResources []schematic.BaseResource
}

// ResolveBaseResourcesHandler wraps schematic.ResolveBaseResources.
type ResolveBaseResourcesHandler struct {
	lookup schematic.Lookup
	names  schematic.NameLookup
}

func NewResolveBaseResourcesHandler(lookup schematic.Lookup, names schematic.NameLookup) *ResolveBaseResourcesHandler {
	return &ResolveBaseResourcesHandler{lookup: lookup, names: names}
}

func (h *ResolveBaseResourcesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ResolveBaseResourcesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	resources, err := schematic.ResolveBaseResources(ctx, query.TargetTypeID, h.lookup, h.names)
	if err != nil {
		return nil, fmt.Errorf("resolve base resources: %w", err)
	}

	return &ResolveBaseResourcesResponse{BaseResources: resources}, nil
}
