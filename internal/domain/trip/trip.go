package trip

import (
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/google/uuid"
)

// Trip is the record of one computed route plan. It is a terminal artifact:
// once recorded it never changes.
type Trip struct {
	id          uuid.UUID
	origin      route.Coordinate
	destination route.Coordinate
	vehicleType string
	fuelType    string
	comparison  route.RouteComparison
	recommended bool
	createdAt   time.Time
}

// NewTrip creates a trip record from a completed plan. recommended reports
// whether the recommendation service produced real text (as opposed to the
// placeholder).
func NewTrip(
	origin, destination route.Coordinate,
	vehicle route.VehicleProfile,
	comparison route.RouteComparison,
	recommended bool,
) (*Trip, error) {
	if comparison.Original.DistanceKm <= 0 {
		return nil, route.NewValidationError("trip distance must be positive")
	}

	return &Trip{
		id:          uuid.New(),
		origin:      origin,
		destination: destination,
		vehicleType: vehicle.Type,
		fuelType:    vehicle.FuelType,
		comparison:  comparison,
		recommended: recommended,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructTrip rebuilds a Trip from persistence data (no validation).
func ReconstructTrip(
	id uuid.UUID,
	origin, destination route.Coordinate,
	vehicleType, fuelType string,
	comparison route.RouteComparison,
	recommended bool,
	createdAt time.Time,
) *Trip {
	return &Trip{
		id:          id,
		origin:      origin,
		destination: destination,
		vehicleType: vehicleType,
		fuelType:    fuelType,
		comparison:  comparison,
		recommended: recommended,
		createdAt:   createdAt,
	}
}

// ID returns the trip identifier.
func (t *Trip) ID() uuid.UUID { return t.id }

// Origin returns the origin coordinate.
func (t *Trip) Origin() route.Coordinate { return t.origin }

// Destination returns the destination coordinate.
func (t *Trip) Destination() route.Coordinate { return t.destination }

// VehicleType returns the caller-supplied vehicle type.
func (t *Trip) VehicleType() string { return t.vehicleType }

// FuelType returns the caller-supplied fuel type.
func (t *Trip) FuelType() string { return t.fuelType }

// Comparison returns the recorded original-vs-optimized comparison.
func (t *Trip) Comparison() route.RouteComparison { return t.comparison }

// Recommended reports whether a real recommendation was generated.
func (t *Trip) Recommended() bool { return t.recommended }

// CreatedAt returns the recording time.
func (t *Trip) CreatedAt() time.Time { return t.createdAt }
