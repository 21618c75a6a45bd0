package route

// RouteResult is the resolved route between two coordinates. It is built once
// per request by the route adapter and is immutable afterwards, except for the
// emissions estimate attached once the emissions leg of the pipeline resolves.
type RouteResult struct {
	DistanceKm      float64
	DurationMinutes int
	Path            []Coordinate
	Directions      []string
	Emissions       *EmissionsResult
}

// AttachEmissions binds the resolved (or fallback) emissions estimate to the route.
func (r *RouteResult) AttachEmissions(em EmissionsResult) {
	r.Emissions = &em
}

// EnergyPrice is the latest regional energy price data point.
type EnergyPrice struct {
	PricePerUnit float64
	Period       string
}

// EmissionsResult is the estimated carbon output for a route distance and
// vehicle class.
type EmissionsResult struct {
	GramsCO2     float64
	KilogramsCO2 float64
}

// WeatherConditions describes current conditions at one named location.
type WeatherConditions struct {
	TemperatureC float64
	Description  string
	WindSpeedMps float64
}

// VehicleProfile is the caller-supplied vehicle description. The pipeline
// never interprets it beyond echoing it into the recommendation prompt.
type VehicleProfile struct {
	Type                string  `json:"type"`
	EfficiencyKmPerUnit float64 `json:"efficiency"`
	FuelType            string  `json:"fuel_type"`
}

// OptimizedRouteEstimate is the synthetic improved-route projection derived
// from a resolved RouteResult. It is never fetched from an upstream service.
type OptimizedRouteEstimate struct {
	DistanceKm      float64
	DurationMinutes int
	KilogramsCO2    float64
}

// RouteMetrics is one side of a route comparison.
type RouteMetrics struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	KilogramsCO2    float64 `json:"kilograms_co2"`
}

// RouteComparison pairs the real route's metrics with the optimized estimate.
type RouteComparison struct {
	Original  RouteMetrics `json:"original"`
	Optimized RouteMetrics `json:"optimized"`
}

// NewRouteComparison builds the terminal comparison artifact from the resolved
// route and its derived optimized estimate.
func NewRouteComparison(rt *RouteResult, opt OptimizedRouteEstimate) RouteComparison {
	var kg float64
	if rt.Emissions != nil {
		kg = rt.Emissions.KilogramsCO2
	}
	return RouteComparison{
		Original: RouteMetrics{
			DistanceKm:      rt.DistanceKm,
			DurationMinutes: rt.DurationMinutes,
			KilogramsCO2:    kg,
		},
		Optimized: RouteMetrics{
			DistanceKm:      opt.DistanceKm,
			DurationMinutes: opt.DurationMinutes,
			KilogramsCO2:    opt.KilogramsCO2,
		},
	}
}
