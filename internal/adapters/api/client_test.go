package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/api"
	"github.com/planetarysim/colonysim/internal/domain/shared"
)

func TestHTTPClient_FetchCharacterPlanetary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/characters/7/planets", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"planetId": 1, "planetType": "barren", "solarSystemId": 30000142, "upgradeLevel": 2, "numPins": 5},
		})
	}))
	defer server.Close()

	client := api.NewHTTPClient(server.URL, 100, 10, 3, time.Second)
	summaries, err := client.FetchCharacterPlanetary(t.Context(), 7, false)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(1), summaries[0].PlanetID)
	assert.Equal(t, "barren", summaries[0].PlanetType)
}

func TestHTTPClient_Unauthorised(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := api.NewHTTPClient(server.URL, 100, 10, 3, time.Second)
	_, err := client.FetchCharacterPlanetary(t.Context(), 7, false)
	require.Error(t, err)
	var unauthorised *shared.UnauthorisedError
	assert.ErrorAs(t, err, &unauthorised)
}

func TestHTTPClient_ServerErrorIsNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := api.NewHTTPClient(server.URL, 100, 10, 3, time.Second)
	_, err := client.FetchCharacterPlanetary(t.Context(), 7, false)
	require.Error(t, err)
	var networkFailure *shared.NetworkFailureError
	assert.ErrorAs(t, err, &networkFailure)
}

func TestHTTPClient_FetchPlanetaryDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"currentSimTime": "2026-07-31T00:00:00Z",
			"pins": []map[string]any{
				{
					"pinId":  1001,
					"typeId": 2544,
					"extractorDetail": map[string]any{
						"productTypeId": 2268,
						"installTime":   "2026-07-30T00:00:00Z",
						"expiryTime":    "2026-08-06T00:00:00Z",
						"cycleTime":     3600,
						"qtyPerCycle":   1200,
						"headRadius":    200.0,
					},
				},
			},
		})
	}))
	defer server.Close()

	client := api.NewHTTPClient(server.URL, 100, 10, 3, time.Second)
	detail, err := client.FetchPlanetaryDetail(t.Context(), 7, 1, false)
	require.NoError(t, err)
	require.Len(t, detail.Pins, 1)
	require.NotNil(t, detail.Pins[0].ExtractorDetail)
	assert.Equal(t, 2268, detail.Pins[0].ExtractorDetail.ProductTypeID)
}
