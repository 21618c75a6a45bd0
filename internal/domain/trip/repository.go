package trip

import (
	"context"

	"github.com/google/uuid"
)

// TripRepository defines the persistence contract for trip records.
type TripRepository interface {
	// Save persists a new trip record.
	Save(ctx context.Context, t *Trip) error

	// FindByID retrieves a trip by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Trip, error)

	// ListRecent retrieves trips newest-first with pagination.
	ListRecent(ctx context.Context, page, limit int) ([]*Trip, int64, error)

	// CountByFuelType returns trip counts grouped by fuel type (admin).
	CountByFuelType(ctx context.Context) (map[string]int64, error)
}
