package route

import (
	"fmt"
	"strings"
)

// PromptInputs holds everything gathered by the pipeline that feeds the
// recommendation prompt.
type PromptInputs struct {
	Route               *RouteResult
	Price               EnergyPrice
	Emissions           EmissionsResult
	OriginLocation      string
	OriginWeather       WeatherConditions
	DestinationLocation string
	DestinationWeather  WeatherConditions
	Vehicle             VehicleProfile
}

// BuildRecommendationPrompt deterministically assembles the prompt sent to the
// recommendation service. Emissions are rounded to two decimal places; the
// closing instruction asks for an unnumbered introductory sentence followed by
// a numbered list starting at 1.
func BuildRecommendationPrompt(in PromptInputs) string {
	var b strings.Builder

	b.WriteString("Based on the following information:\n")
	fmt.Fprintf(&b, "- Distance: %.1f km\n", in.Route.DistanceKm)
	fmt.Fprintf(&b, "- Estimated Travel Time: %d minutes\n", in.Route.DurationMinutes)
	fmt.Fprintf(&b, "- Energy Price: $%.2f per unit (%s)\n", in.Price.PricePerUnit, in.Price.Period)
	fmt.Fprintf(&b, "- Estimated Carbon Emissions: %.2f kg of CO2\n", in.Emissions.KilogramsCO2)
	fmt.Fprintf(&b, "- Weather at %s: %s, Temperature: %.1f°C, Wind Speed: %.1f m/s\n",
		in.OriginLocation, in.OriginWeather.Description, in.OriginWeather.TemperatureC, in.OriginWeather.WindSpeedMps)
	fmt.Fprintf(&b, "- Weather at %s: %s, Temperature: %.1f°C, Wind Speed: %.1f m/s\n",
		in.DestinationLocation, in.DestinationWeather.Description, in.DestinationWeather.TemperatureC, in.DestinationWeather.WindSpeedMps)
	fmt.Fprintf(&b, "- Vehicle Type: %s, Fuel Efficiency: %.1f km/l, Fuel Type: %s\n",
		in.Vehicle.Type, in.Vehicle.EfficiencyKmPerUnit, in.Vehicle.FuelType)
	b.WriteString("Provide a recommendation for reducing emissions and optimizing energy consumption on this route. ")
	b.WriteString("Start with a single introductory sentence without a number, then give the advice as a numbered list starting at 1.")

	return b.String()
}
