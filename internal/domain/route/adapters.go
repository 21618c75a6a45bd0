package route

import "context"

// RouteAdapter resolves a route between two geographic points. Implementations
// own whatever axis ordering the upstream routing protocol requires; callers
// only ever see (lat, lon). Failures wrap ErrRouteUnavailable.
type RouteAdapter interface {
	// GetRoute resolves the route from origin to destination.
	GetRoute(ctx context.Context, origin, destination Coordinate, apiKey string) (*RouteResult, error)
}

// EnergyPriceAdapter resolves the current regional energy price. It has no
// route dependency. Failures wrap ErrEnergyDataUnavailable.
type EnergyPriceAdapter interface {
	// CurrentPrice returns the latest price data point.
	CurrentPrice(ctx context.Context, apiKey string) (*EnergyPrice, error)
}

// WeatherAdapter resolves current conditions for a named location. Failures
// wrap ErrWeatherDataUnavailable.
type WeatherAdapter interface {
	// CurrentConditions returns conditions for the given place name.
	CurrentConditions(ctx context.Context, location, apiKey string) (*WeatherConditions, error)
}

// EmissionsAdapter estimates carbon output for a distance and a fixed vehicle
// class. Failures wrap ErrEmissionsUnavailable.
type EmissionsAdapter interface {
	// EstimateEmissions returns the estimated carbon output for the distance.
	EstimateEmissions(ctx context.Context, distanceKm float64, apiKey string) (*EmissionsResult, error)
}

// RecommendationAdapter produces a natural-language recommendation from a
// structured prompt. Failures wrap ErrRecommendationUnavailable.
type RecommendationAdapter interface {
	// GenerateRecommendation returns the generated recommendation text.
	GenerateRecommendation(ctx context.Context, prompt, apiKey string) (string, error)
}
