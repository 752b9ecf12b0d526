package planetary

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/remote"
)

// FetchPlanetaryDetailQuery asks the remote API for a single planet's full
// pin/route layout.
type FetchPlanetaryDetailQuery struct {
	CharacterID  int64
	PlanetID     int64
	ForceRefresh bool
}

// FetchPlanetaryDetailResponse carries the planetary detail.
type FetchPlanetaryDetailResponse struct {
	Detail *remote.PlanetDetail
}

// FetchPlanetaryDetailHandler wraps remote.APIClient.FetchPlanetaryDetail.
type FetchPlanetaryDetailHandler struct {
	client remote.APIClient
}

func NewFetchPlanetaryDetailHandler(client remote.APIClient) *FetchPlanetaryDetailHandler {
	return &FetchPlanetaryDetailHandler{client: client}
}

func (h *FetchPlanetaryDetailHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FetchPlanetaryDetailQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	detail, err := h.client.FetchPlanetaryDetail(ctx, query.CharacterID, query.PlanetID, query.ForceRefresh)
	if err != nil {
		return nil, err
	}

	return &FetchPlanetaryDetailResponse{Detail: detail}, nil
}
