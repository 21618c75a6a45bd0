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

// OpenWeatherAdapter resolves current conditions by place name through the
// OpenWeatherMap current-weather API.
type OpenWeatherAdapter struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewOpenWeatherAdapter creates a weather adapter against the given base URL.
func NewOpenWeatherAdapter(baseURL string, timeout time.Duration, logger *zap.Logger) *OpenWeatherAdapter {
	return &OpenWeatherAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentConditions returns metric-unit conditions for the named location.
func (a *OpenWeatherAdapter) CurrentConditions(ctx context.Context, location, apiKey string) (*route.WeatherConditions, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/data/2.5/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", route.ErrWeatherDataUnavailable, err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", route.ErrWeatherDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", route.ErrWeatherDataUnavailable, resp.StatusCode)
	}

	var parsed openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", route.ErrWeatherDataUnavailable, err)
	}

	description := ""
	if len(parsed.Weather) > 0 {
		description = parsed.Weather[0].Description
	}

	return &route.WeatherConditions{
		TemperatureC: parsed.Main.Temp,
		Description:  description,
		WindSpeedMps: parsed.Wind.Speed,
	}, nil
}
