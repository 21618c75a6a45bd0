package application

import (
	"context"
	"fmt"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	tripDomain "github.com/GreenRoute/service-ecoroute/internal/domain/trip"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripDTO is the API representation of a recorded trip.
type TripDTO struct {
	ID          uuid.UUID             `json:"id"`
	Origin      route.Coordinate      `json:"origin"`
	Destination route.Coordinate      `json:"destination"`
	VehicleType string                `json:"vehicle_type"`
	FuelType    string                `json:"fuel_type"`
	Comparison  route.RouteComparison `json:"comparison"`
	Recommended bool                  `json:"recommended"`
	CreatedAt   time.Time             `json:"created_at"`
}

// TripStatsDTO holds trip statistics for the admin endpoint.
type TripStatsDTO struct {
	TotalTrips int64            `json:"total_trips"`
	ByFuelType map[string]int64 `json:"by_fuel_type"`
}

// TripService implements read use cases over the trip history store.
type TripService struct {
	repo   tripDomain.TripRepository
	logger *zap.Logger
}

// NewTripService creates a new TripService.
func NewTripService(repo tripDomain.TripRepository, logger *zap.Logger) *TripService {
	return &TripService{repo: repo, logger: logger}
}

// GetTrip retrieves a single recorded trip by ID.
func (s *TripService) GetTrip(ctx context.Context, id uuid.UUID) (*TripDTO, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toTripDTO(t)
	return &result, nil
}

// ListTrips retrieves recorded trips newest-first with pagination.
func (s *TripService) ListTrips(ctx context.Context, page, limit int) ([]TripDTO, int64, error) {
	trips, total, err := s.repo.ListRecent(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	dtos := make([]TripDTO, len(trips))
	for i, t := range trips {
		dtos[i] = toTripDTO(t)
	}
	return dtos, total, nil
}

// GetTripStats returns aggregate trip statistics (admin).
func (s *TripService) GetTripStats(ctx context.Context) (*TripStatsDTO, error) {
	counts, err := s.repo.CountByFuelType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &TripStatsDTO{
		TotalTrips: total,
		ByFuelType: counts,
	}, nil
}

func toTripDTO(t *tripDomain.Trip) TripDTO {
	return TripDTO{
		ID:          t.ID(),
		Origin:      t.Origin(),
		Destination: t.Destination(),
		VehicleType: t.VehicleType(),
		FuelType:    t.FuelType(),
		Comparison:  t.Comparison(),
		Recommended: t.Recommended(),
		CreatedAt:   t.CreatedAt(),
	}
}
