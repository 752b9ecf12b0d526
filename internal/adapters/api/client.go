// Package api implements the §6.3 remote character-planetary API client:
// an HTTP adapter behind a token-bucket rate limiter and the circuit
// breaker in this package, returning the structured error kinds
// (NetworkFailure/InvalidResponse/Unauthorised) the domain layer expects.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/planetarysim/colonysim/internal/domain/remote"
	"github.com/planetarysim/colonysim/internal/domain/shared"
	"golang.org/x/time/rate"
)

// HTTPClient implements remote.APIClient against the character planetary
// HTTP API, the same adapter-pattern shape as the teacher's own API client
// (base URL + http.Client + rate limiter + circuit breaker).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *CircuitBreaker
}

// NewHTTPClient builds an HTTPClient. requestsPerSecond/burst configure the
// token-bucket limiter (§5's rate-limited external collaborator); maxFailures
// and openTimeout configure the circuit breaker.
func NewHTTPClient(baseURL string, requestsPerSecond float64, burst int, maxFailures int, openTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		breaker:    NewCircuitBreaker(maxFailures, openTimeout, nil),
	}
}

type planetSummaryDTO struct {
	PlanetID     int64  `json:"planetId"`
	PlanetType   string `json:"planetType"`
	SolarSystem  int64  `json:"solarSystemId"`
	UpgradeLevel int    `json:"upgradeLevel"`
	NumPins      int    `json:"numPins"`
}

// FetchCharacterPlanetary implements remote.APIClient.
func (c *HTTPClient) FetchCharacterPlanetary(ctx context.Context, characterID int64, forceRefresh bool) ([]remote.PlanetSummary, error) {
	path := fmt.Sprintf("/characters/%d/planets", characterID)
	var dtos []planetSummaryDTO
	if err := c.getJSON(ctx, path, forceRefresh, &dtos); err != nil {
		return nil, err
	}

	out := make([]remote.PlanetSummary, len(dtos))
	for i, d := range dtos {
		out[i] = remote.PlanetSummary{
			PlanetID:     d.PlanetID,
			PlanetType:   d.PlanetType,
			SolarSystem:  d.SolarSystem,
			UpgradeLevel: d.UpgradeLevel,
			NumPins:      d.NumPins,
		}
	}
	return out, nil
}

type pinDTO struct {
	PinID              int64            `json:"pinId"`
	TypeID             int              `json:"typeId"`
	SchematicID        *int             `json:"schematicId"`
	LastCycleStartTime *string          `json:"lastCycleStartTime"`
	ContentsTypeID     []int            `json:"contentsTypeId"`
	ContentsAmount     []int64          `json:"contentsAmount"`
	ExtractorDetail    *extractorDTO    `json:"extractorDetail"`
}

type extractorDTO struct {
	ProductTypeID int     `json:"productTypeId"`
	InstallTime   string  `json:"installTime"`
	ExpiryTime    string  `json:"expiryTime"`
	CycleTime     int64   `json:"cycleTime"`
	QtyPerCycle   int64   `json:"qtyPerCycle"`
	HeadRadius    float64 `json:"headRadius"`
}

type routeDTO struct {
	SourcePinID      int64 `json:"sourcePinId"`
	DestinationPinID int64 `json:"destinationPinId"`
	ContentTypeID    int   `json:"contentTypeId"`
	Quantity         int64 `json:"quantity"`
}

type linkDTO struct {
	SourcePinID      int64 `json:"sourcePinId"`
	DestinationPinID int64 `json:"destinationPinId"`
}

type planetDetailDTO struct {
	Pins           []pinDTO   `json:"pins"`
	Routes         []routeDTO `json:"routes"`
	Links          []linkDTO  `json:"links"`
	CurrentSimTime string     `json:"currentSimTime"`
}

// FetchPlanetaryDetail implements remote.APIClient.
func (c *HTTPClient) FetchPlanetaryDetail(ctx context.Context, characterID int64, planetID int64, forceRefresh bool) (*remote.PlanetDetail, error) {
	path := fmt.Sprintf("/characters/%d/planets/%d", characterID, planetID)
	var dto planetDetailDTO
	if err := c.getJSON(ctx, path, forceRefresh, &dto); err != nil {
		return nil, err
	}

	now, err := time.Parse(time.RFC3339, dto.CurrentSimTime)
	if err != nil {
		return nil, shared.NewInvalidResponseError(path, "unparseable currentSimTime: "+dto.CurrentSimTime)
	}

	detail := &remote.PlanetDetail{CurrentSimTime: now}
	for _, p := range dto.Pins {
		var lastCycle *time.Time
		if p.LastCycleStartTime != nil {
			if t, err := time.Parse(time.RFC3339, *p.LastCycleStartTime); err == nil {
				lastCycle = &t
			}
			// Unparseable timestamp: TimeParseFailure (§7) - left nil, the
			// facility builder downstream treats it as never having run.
		}

		pin := remote.PinData{
			PinID:              p.PinID,
			TypeID:             p.TypeID,
			SchematicID:        p.SchematicID,
			LastCycleStartTime: lastCycle,
			ContentsTypeID:     p.ContentsTypeID,
			ContentsAmount:     p.ContentsAmount,
		}
		if p.ExtractorDetail != nil {
			install, errI := time.Parse(time.RFC3339, p.ExtractorDetail.InstallTime)
			expiry, errE := time.Parse(time.RFC3339, p.ExtractorDetail.ExpiryTime)
			extractor := &remote.ExtractorDetailData{
				ProductTypeID: p.ExtractorDetail.ProductTypeID,
				CycleTime:     p.ExtractorDetail.CycleTime,
				QtyPerCycle:   p.ExtractorDetail.QtyPerCycle,
				HeadRadius:    p.ExtractorDetail.HeadRadius,
			}
			if errI == nil && errE == nil {
				extractor.InstallTime = install
				extractor.ExpiryTime = expiry
			}
			// Unparseable install/expiry: TimeParseFailureError per §7 -
			// both times are left zero, so the facility builder treats this
			// extractor as expired: inactive with zero yield.
			pin.ExtractorDetail = extractor
		}
		detail.Pins = append(detail.Pins, pin)
	}
	for _, r := range dto.Routes {
		detail.Routes = append(detail.Routes, remote.RouteData{
			SourcePinID:      r.SourcePinID,
			DestinationPinID: r.DestinationPinID,
			ContentTypeID:    r.ContentTypeID,
			Quantity:         r.Quantity,
		})
	}
	for _, l := range dto.Links {
		detail.Links = append(detail.Links, remote.LinkData{
			SourcePinID:      l.SourcePinID,
			DestinationPinID: l.DestinationPinID,
		})
	}
	return detail, nil
}

// getJSON performs a rate-limited, circuit-broken GET and decodes the JSON
// body into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, forceRefresh bool, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return shared.NewCancelledError("fetch " + path)
	}

	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return shared.NewInvalidResponseError(path, "malformed request URL: "+err.Error())
	}
	if forceRefresh {
		q := reqURL.Query()
		q.Set("forceRefresh", strconv.FormatBool(true))
		reqURL.RawQuery = q.Encode()
	}

	var resp *http.Response
	breakerErr := c.breaker.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
		if err != nil {
			return err
		}
		resp, err = c.httpClient.Do(req)
		return err
	})
	if breakerErr != nil {
		if ctx.Err() != nil {
			return shared.NewCancelledError("fetch " + path)
		}
		return shared.NewNetworkFailureError(breakerErr)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return shared.NewUnauthorisedError(path)
	case resp.StatusCode >= 500:
		return shared.NewNetworkFailureError(fmt.Errorf("server error: %s", resp.Status))
	case resp.StatusCode >= 400:
		return shared.NewInvalidResponseError(path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return shared.NewInvalidResponseError(path, "decode failure: "+err.Error())
	}
	return nil
}
