package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"go.uber.org/zap"
)

// ORSRouteAdapter resolves routes through the OpenRouteService directions API.
type ORSRouteAdapter struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewORSRouteAdapter creates a route adapter against the given base URL.
func NewORSRouteAdapter(baseURL string, timeout time.Duration, logger *zap.Logger) *ORSRouteAdapter {
	return &ORSRouteAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

type orsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
			Segments []struct {
				Steps []struct {
					Instruction string `json:"instruction"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute resolves the route between origin and destination.
// OpenRouteService speaks (lon, lat); the swap in both directions happens
// here so the rest of the system only sees (lat, lon).
func (a *ORSRouteAdapter) GetRoute(ctx context.Context, origin, destination route.Coordinate, apiKey string) (*route.RouteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	payload := orsRequest{
		Coordinates: [][]float64{
			{origin.Longitude, origin.Latitude},
			{destination.Longitude, destination.Latitude},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", route.ErrRouteUnavailable, err)
	}

	url := a.baseURL + "/v2/directions/driving-car/geojson"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", route.ErrRouteUnavailable, err)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", route.ErrRouteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", route.ErrRouteUnavailable, resp.StatusCode)
	}

	var parsed orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", route.ErrRouteUnavailable, err)
	}
	if len(parsed.Features) == 0 {
		return nil, fmt.Errorf("%w: no route features in response", route.ErrRouteUnavailable)
	}

	feature := parsed.Features[0]

	path := make([]route.Coordinate, len(feature.Geometry.Coordinates))
	for i, c := range feature.Geometry.Coordinates {
		if len(c) < 2 {
			return nil, fmt.Errorf("%w: malformed geometry coordinate", route.ErrRouteUnavailable)
		}
		path[i] = route.Coordinate{Latitude: c[1], Longitude: c[0]}
	}

	var directions []string
	for _, seg := range feature.Properties.Segments {
		for _, step := range seg.Steps {
			directions = append(directions, step.Instruction)
		}
	}

	return &route.RouteResult{
		DistanceKm:      feature.Properties.Summary.Distance / 1000,
		DurationMinutes: int(math.Round(feature.Properties.Summary.Duration / 60)),
		Path:            path,
		Directions:      directions,
	}, nil
}
