package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"go.uber.org/zap"
)

// EIAEnergyPriceAdapter resolves the latest regional energy price from the EIA
// time-series API.
type EIAEnergyPriceAdapter struct {
	baseURL    string
	seriesID   string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewEIAEnergyPriceAdapter creates an energy price adapter for one series.
func NewEIAEnergyPriceAdapter(baseURL, seriesID string, timeout time.Duration, logger *zap.Logger) *EIAEnergyPriceAdapter {
	return &EIAEnergyPriceAdapter{
		baseURL:    baseURL,
		seriesID:   seriesID,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

type eiaResponse struct {
	Series []struct {
		Data [][]interface{} `json:"data"`
	} `json:"series"`
}

// CurrentPrice returns the newest data point of the configured series.
func (a *EIAEnergyPriceAdapter) CurrentPrice(ctx context.Context, apiKey string) (*route.EnergyPrice, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("series_id", a.seriesID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/series/?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", route.ErrEnergyDataUnavailable, err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", route.ErrEnergyDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", route.ErrEnergyDataUnavailable, resp.StatusCode)
	}

	var parsed eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", route.ErrEnergyDataUnavailable, err)
	}
	if len(parsed.Series) == 0 || len(parsed.Series[0].Data) == 0 {
		return nil, fmt.Errorf("%w: empty data series", route.ErrEnergyDataUnavailable)
	}

	// Each data point is a [period, price] pair, newest first.
	point := parsed.Series[0].Data[0]
	if len(point) < 2 {
		return nil, fmt.Errorf("%w: malformed data point", route.ErrEnergyDataUnavailable)
	}
	period, ok := point[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: malformed period label", route.ErrEnergyDataUnavailable)
	}
	price, ok := point[1].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: malformed price value", route.ErrEnergyDataUnavailable)
	}

	return &route.EnergyPrice{
		PricePerUnit: price,
		Period:       period,
	}, nil
}
