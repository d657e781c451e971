package repository

import (
	"context"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
)

// MotorcycleRepository defines the catalog store operations.
type MotorcycleRepository interface {
	Create(ctx context.Context, m *entity.Motorcycle) error
	GetByID(ctx context.Context, id string) (*entity.Motorcycle, error)
	Update(ctx context.Context, m *entity.Motorcycle) error
	Delete(ctx context.Context, id string) error
	// List searches name, company and status, returning the page slice
	// and the total match count.
	List(ctx context.Context, f ListFilter) ([]entity.Motorcycle, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
