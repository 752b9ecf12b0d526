// Package planetary wires the remote character planetary API (§6.3) to the
// mediator.
package planetary

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/remote"
)

// FetchCharacterPlanetaryQuery asks the remote API for a character's
// colonised planets.
type FetchCharacterPlanetaryQuery struct {
	CharacterID  int64
	ForceRefresh bool
}

// FetchCharacterPlanetaryResponse carries the planet summaries.
type FetchCharacterPlanetaryResponse struct {
	Planets []remote.PlanetSummary
}

// FetchCharacterPlanetaryHandler wraps remote.APIClient.FetchCharacterPlanetary.
type FetchCharacterPlanetaryHandler struct {
	client remote.APIClient
}

func NewFetchCharacterPlanetaryHandler(client remote.APIClient) *FetchCharacterPlanetaryHandler {
	return &FetchCharacterPlanetaryHandler{client: client}
}

func (h *FetchCharacterPlanetaryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FetchCharacterPlanetaryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	planets, err := h.client.FetchCharacterPlanetary(ctx, query.CharacterID, query.ForceRefresh)
	if err != nil {
		return nil, err
	}

	return &FetchCharacterPlanetaryResponse{Planets: planets}, nil
}
