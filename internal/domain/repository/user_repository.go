package repository

import (
	"context"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
)

// UserRepository defines the credential store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// List searches first/last name and email, returning the page slice
	// and the total match count.
	List(ctx context.Context, f ListFilter) ([]entity.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
