// Package sitefinding wires the site finder (§4.14) to the mediator.
package sitefinding

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/sitefinder"
)

// FindSitesQuery asks for the best candidate systems to host a production
// chain producing requiredResources.
type FindSitesQuery struct {
	Candidates        []int
	RequiredResources []int
	MaxJumps          int
	TopN              int
}

// FindSitesResponse carries the ranked results.
type FindSitesResponse struct {
	Sites []sitefinder.SiteResult
}

// FindSitesHandler wraps sitefinder.FindSites.
type FindSitesHandler struct {
	catalog       sitefinder.SystemCatalog
	resourceTypes sitefinder.ResourcePlanetTypes
	graph         sitefinder.AdjacencyGraph
}

func NewFindSitesHandler(catalog sitefinder.SystemCatalog, resourceTypes sitefinder.ResourcePlanetTypes, graph sitefinder.AdjacencyGraph) *FindSitesHandler {
	return &FindSitesHandler{catalog: catalog, resourceTypes: resourceTypes, graph: graph}
}

func (h *FindSitesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FindSitesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	sites, err := sitefinder.FindSites(ctx, query.Candidates, query.RequiredResources, query.MaxJumps, query.TopN, h.catalog, h.resourceTypes, h.graph)
	if err != nil {
		return nil, fmt.Errorf("find sites: %w", err)
	}

	return &FindSitesResponse{Sites: sites}, nil
}
