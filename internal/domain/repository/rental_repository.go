package repository

import (
	"context"
	"errors"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
)

// Sentinel failures for the ledger's conditional transitions. The
// implementation must apply each transition atomically: the rental write and
// the motorcycle status flip happen in one transaction, with the flip
// performed as a conditional update so concurrent requests cannot both win.
var (
	ErrMotorcycleUnavailable = errors.New("motorcycle is not available")
	ErrRentalNotOngoing      = errors.New("rental is not ongoing")
)

// RentalRepository owns rental transaction records.
type RentalRepository interface {
	// CreateAndMarkRented inserts r with status Ongoing and flips the
	// referenced motorcycle Available -> Rented in the same transaction.
	// Returns ErrMotorcycleUnavailable when the flip matches no row.
	CreateAndMarkRented(ctx context.Context, r *entity.Rental) error
	// CompleteAndRelease flips rental id Ongoing -> Completed and the
	// referenced motorcycle back to Available in the same transaction.
	// Returns ErrRentalNotOngoing when the rental is already completed.
	CompleteAndRelease(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]entity.RentalEntry, error)
	ListAll(ctx context.Context) ([]entity.RentalEntry, error)
}
