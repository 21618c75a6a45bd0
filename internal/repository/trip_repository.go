package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	tripDomain "github.com/GreenRoute/service-ecoroute/internal/domain/trip"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripModel is the GORM model for the trips table.
type TripModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OriginLat      float64         `gorm:"not null"`
	OriginLng      float64         `gorm:"not null"`
	DestinationLat float64         `gorm:"not null"`
	DestinationLng float64         `gorm:"not null"`
	VehicleType    string          `gorm:"size:100;not null;default:''"`
	FuelType       string          `gorm:"size:50;not null;default:'';index"`
	Comparison     json.RawMessage `gorm:"type:jsonb;not null"`
	Recommended    bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (TripModel) TableName() string {
	return "trips"
}

// GormTripRepository is the GORM-based implementation of TripRepository.
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GormTripRepository.
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// Save persists a new trip record.
func (r *GormTripRepository) Save(ctx context.Context, t *tripDomain.Trip) error {
	model, err := toTripModel(t)
	if err != nil {
		return fmt.Errorf("failed to convert trip to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// FindByID retrieves a trip by its unique identifier.
func (r *GormTripRepository) FindByID(ctx context.Context, id uuid.UUID) (*tripDomain.Trip, error) {
	var model TripModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, route.NewNotFoundError(fmt.Sprintf("trip %s not found", id))
		}
		return nil, fmt.Errorf("failed to find trip by ID: %w", err)
	}
	return toDomainTrip(&model)
}

// ListRecent retrieves trips newest-first with pagination.
func (r *GormTripRepository) ListRecent(ctx context.Context, page, limit int) ([]*tripDomain.Trip, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&TripModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	var models []TripModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	trips := make([]*tripDomain.Trip, len(models))
	for i, m := range models {
		t, err := toDomainTrip(&m)
		if err != nil {
			return nil, 0, err
		}
		trips[i] = t
	}
	return trips, total, nil
}

// CountByFuelType returns trip counts grouped by fuel type.
func (r *GormTripRepository) CountByFuelType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		FuelType string
		Count    int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&TripModel{}).
		Select("fuel_type, COUNT(*) as count").
		Group("fuel_type").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count trips by fuel type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.FuelType] = r.Count
	}
	return counts, nil
}

// --- Mapping helpers ---

func toTripModel(t *tripDomain.Trip) (*TripModel, error) {
	comparison, err := json.Marshal(t.Comparison())
	if err != nil {
		return nil, err
	}
	return &TripModel{
		ID:             t.ID(),
		OriginLat:      t.Origin().Latitude,
		OriginLng:      t.Origin().Longitude,
		DestinationLat: t.Destination().Latitude,
		DestinationLng: t.Destination().Longitude,
		VehicleType:    t.VehicleType(),
		FuelType:       t.FuelType(),
		Comparison:     comparison,
		Recommended:    t.Recommended(),
		CreatedAt:      t.CreatedAt(),
	}, nil
}

func toDomainTrip(m *TripModel) (*tripDomain.Trip, error) {
	var comparison route.RouteComparison
	if err := json.Unmarshal(m.Comparison, &comparison); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip comparison: %w", err)
	}
	return tripDomain.ReconstructTrip(
		m.ID,
		route.Coordinate{Latitude: m.OriginLat, Longitude: m.OriginLng},
		route.Coordinate{Latitude: m.DestinationLat, Longitude: m.DestinationLng},
		m.VehicleType,
		m.FuelType,
		comparison,
		m.Recommended,
		m.CreatedAt,
	), nil
}
