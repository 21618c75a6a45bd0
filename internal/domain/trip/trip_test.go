package trip

import (
	"testing"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() route.RouteComparison {
	return route.RouteComparison{
		Original:  route.RouteMetrics{DistanceKm: 559, DurationMinutes: 300, KilogramsCO2: 50},
		Optimized: route.RouteMetrics{DistanceKm: 559, DurationMinutes: 285, KilogramsCO2: 45},
	}
}

func TestNewTrip(t *testing.T) {
	origin := route.Coordinate{Latitude: 37.7749, Longitude: -122.4194}
	destination := route.Coordinate{Latitude: 34.0522, Longitude: -118.2437}
	vehicle := route.VehicleProfile{Type: "Sedan", EfficiencyKmPerUnit: 15, FuelType: "gasoline"}

	tr, err := NewTrip(origin, destination, vehicle, sampleComparison(), true)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tr.ID())
	assert.Equal(t, origin, tr.Origin())
	assert.Equal(t, destination, tr.Destination())
	assert.Equal(t, "Sedan", tr.VehicleType())
	assert.Equal(t, "gasoline", tr.FuelType())
	assert.Equal(t, sampleComparison(), tr.Comparison())
	assert.True(t, tr.Recommended())
	assert.WithinDuration(t, time.Now().UTC(), tr.CreatedAt(), time.Minute)
}

func TestNewTrip_RejectsNonPositiveDistance(t *testing.T) {
	comparison := sampleComparison()
	comparison.Original.DistanceKm = 0

	_, err := NewTrip(route.Coordinate{}, route.Coordinate{}, route.VehicleProfile{}, comparison, false)
	require.Error(t, err)

	var domainErr *route.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, route.CodeValidation, domainErr.Code)
}

func TestReconstructTrip(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	tr := ReconstructTrip(
		id,
		route.Coordinate{Latitude: 1, Longitude: 2},
		route.Coordinate{Latitude: 3, Longitude: 4},
		"EV", "electric",
		sampleComparison(),
		false,
		created,
	)

	assert.Equal(t, id, tr.ID())
	assert.Equal(t, "EV", tr.VehicleType())
	assert.Equal(t, "electric", tr.FuelType())
	assert.False(t, tr.Recommended())
	assert.Equal(t, created, tr.CreatedAt())
}
