package events

import "time"

// Topic and event type names for route events.
const (
	TopicRouteEvents = "route.events"
	RouteComputed    = "route.computed"
)

// RouteComputedEvent is published after each successfully assembled plan.
type RouteComputedEvent struct {
	OriginLat                float64   `json:"origin_lat"`
	OriginLng                float64   `json:"origin_lng"`
	DestinationLat           float64   `json:"destination_lat"`
	DestinationLng           float64   `json:"destination_lng"`
	VehicleType              string    `json:"vehicle_type"`
	FuelType                 string    `json:"fuel_type"`
	DistanceKm               float64   `json:"distance_km"`
	DurationMinutes          int       `json:"duration_minutes"`
	KilogramsCO2             float64   `json:"kilograms_co2"`
	OptimizedDurationMinutes int       `json:"optimized_duration_minutes"`
	OptimizedKilogramsCO2    float64   `json:"optimized_kilograms_co2"`
	Recommended              bool      `json:"recommended"`
	OccurredAt               time.Time `json:"occurred_at"`
}
