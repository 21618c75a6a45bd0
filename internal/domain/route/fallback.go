package route

// AverageEmissionFactorKgPerKm is the linear estimate applied when the
// emissions service is unavailable: an average passenger vehicle emits
// roughly 2.31 kg of CO2 per kilometre driven.
const AverageEmissionFactorKgPerKm = 2.31

// RecommendationPlaceholder is returned to the caller when the recommendation
// service fails. The request still succeeds.
const RecommendationPlaceholder = "Failed to generate recommendation."

// DefaultOriginConditions is the substitute value when the weather lookup for
// the origin location fails.
func DefaultOriginConditions() WeatherConditions {
	return WeatherConditions{TemperatureC: 20, Description: "clear", WindSpeedMps: 5}
}

// DefaultDestinationConditions is the substitute value when the weather lookup
// for the destination location fails.
func DefaultDestinationConditions() WeatherConditions {
	return WeatherConditions{TemperatureC: 25, Description: "clear", WindSpeedMps: 5}
}

// FallbackEmissions derives a linear emissions estimate from the route
// distance when the emissions service is unavailable.
func FallbackEmissions(distanceKm float64) EmissionsResult {
	kg := distanceKm * AverageEmissionFactorKgPerKm
	return EmissionsResult{
		GramsCO2:     kg * 1000,
		KilogramsCO2: kg,
	}
}
