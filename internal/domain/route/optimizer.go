package route

import "math"

// RouteOptimizer derives an improved-route estimate from a resolved route.
type RouteOptimizer interface {
	// Optimize returns the optimized estimate for the given route.
	Optimize(rt *RouteResult) OptimizedRouteEstimate
}

// FixedRatioOptimizer is a deterministic placeholder model, not a real solver:
// it keeps the distance, improves duration by 5% and emissions by 10%.
type FixedRatioOptimizer struct {
	durationRatio  float64
	emissionsRatio float64
}

// NewFixedRatioOptimizer creates the default fixed-ratio optimizer.
func NewFixedRatioOptimizer() *FixedRatioOptimizer {
	return &FixedRatioOptimizer{
		durationRatio:  0.95,
		emissionsRatio: 0.9,
	}
}

// Optimize computes the fixed-ratio estimate. Pure arithmetic over an already
// validated route; the emissions estimate must be attached beforehand.
func (o *FixedRatioOptimizer) Optimize(rt *RouteResult) OptimizedRouteEstimate {
	var kg float64
	if rt.Emissions != nil {
		kg = rt.Emissions.KilogramsCO2
	}
	return OptimizedRouteEstimate{
		DistanceKm:      rt.DistanceKm,
		DurationMinutes: int(math.Round(float64(rt.DurationMinutes) * o.durationRatio)),
		KilogramsCO2:    kg * o.emissionsRatio,
	}
}
