package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"go.uber.org/zap"
)

// CarbonInterfaceEmissionsAdapter estimates vehicle emissions through the
// Carbon Interface estimates API.
type CarbonInterfaceEmissionsAdapter struct {
	baseURL        string
	vehicleModelID string
	httpClient     *http.Client
	timeout        time.Duration
	logger         *zap.Logger
}

// NewCarbonInterfaceEmissionsAdapter creates an emissions adapter using a
// fixed vehicle model identifier for all estimates.
func NewCarbonInterfaceEmissionsAdapter(baseURL, vehicleModelID string, timeout time.Duration, logger *zap.Logger) *CarbonInterfaceEmissionsAdapter {
	return &CarbonInterfaceEmissionsAdapter{
		baseURL:        baseURL,
		vehicleModelID: vehicleModelID,
		httpClient:     &http.Client{Timeout: timeout},
		timeout:        timeout,
		logger:         logger,
	}
}

type carbonEstimateRequest struct {
	Type           string  `json:"type"`
	DistanceUnit   string  `json:"distance_unit"`
	DistanceValue  float64 `json:"distance_value"`
	VehicleModelID string  `json:"vehicle_model_id"`
}

type carbonEstimateResponse struct {
	Data struct {
		Attributes struct {
			CarbonG  float64 `json:"carbon_g"`
			CarbonKg float64 `json:"carbon_kg"`
		} `json:"attributes"`
	} `json:"data"`
}

// EstimateEmissions creates an estimate for the given distance. The upstream
// answers estimate creation with 201; anything but 201/202 is a failure.
func (a *CarbonInterfaceEmissionsAdapter) EstimateEmissions(ctx context.Context, distanceKm float64, apiKey string) (*route.EmissionsResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	payload := carbonEstimateRequest{
		Type:           "vehicle",
		DistanceUnit:   "km",
		DistanceValue:  distanceKm,
		VehicleModelID: a.vehicleModelID,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", route.ErrEmissionsUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/estimates", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", route.ErrEmissionsUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", route.ErrEmissionsUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("%w: unexpected status %d", route.ErrEmissionsUnavailable, resp.StatusCode)
	}

	var parsed carbonEstimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", route.ErrEmissionsUnavailable, err)
	}

	return &route.EmissionsResult{
		GramsCO2:     parsed.Data.Attributes.CarbonG,
		KilogramsCO2: parsed.Data.Attributes.CarbonKg,
	}, nil
}
