package application

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
)

// RentalService is the rental ledger: it enforces the availability state
// machine and computes rental cost. The atomicity of each transition lives
// in the repository (one transaction per transition, conditional status
// flips), so two concurrent rent requests for one motorcycle cannot both
// succeed.
type RentalService struct {
	Rentals     repo.RentalRepository
	Motorcycles repo.MotorcycleRepository
	Logger      *logrus.Logger
}

func NewRentalService(rentals repo.RentalRepository, motorcycles repo.MotorcycleRepository, logger *logrus.Logger) *RentalService {
	return &RentalService{Rentals: rentals, Motorcycles: motorcycles, Logger: logger}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseRentalDate accepts RFC3339 timestamps or bare dates.
func ParseRentalDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// RentalDays charges partial days as full days: exactly 24h is one day,
// anything past it starts the next. Never zero, since end > start.
func RentalDays(start, end time.Time) int64 {
	days := int64(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// Rent executes the check-out transition for userID on motorcycleID.
func (s *RentalService) Rent(ctx context.Context, userID, motorcycleID, startStr, endStr string) (*entity.Rental, error) {
	start, err := ParseRentalDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ParseRentalDate(endStr)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}

	m, err := s.Motorcycles.GetByID(ctx, motorcycleID)
	if err != nil || m == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		return nil, ErrMotorcycleNotFound
	}
	if m.Status != entity.MotorcycleAvailable {
		return nil, ErrMotorcycleUnavailable
	}

	rental := &entity.Rental{
		UserID:       userID,
		MotorcycleID: m.ID,
		StartDate:    start,
		EndDate:      end,
		TotalPrice:   float64(RentalDays(start, end)) * m.Price,
	}
	if err := s.Rentals.CreateAndMarkRented(ctx, rental); err != nil {
		if errors.Is(err, repo.ErrMotorcycleUnavailable) {
			// Lost the race against a concurrent renter.
			return nil, ErrMotorcycleUnavailable
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"rental_id":     rental.ID,
			"user_id":       userID,
			"motorcycle_id": m.ID,
			"total_price":   rental.TotalPrice,
		}).Info("motorcycle rented")
	}
	return rental, nil
}

// Return executes the return transition. The rental must belong to the
// caller; rentals of other users are reported as not found rather than
// forbidden.
func (s *RentalService) Return(ctx context.Context, userID, rentalID string) (*entity.Rental, error) {
	rental, err := s.Rentals.GetByID(ctx, rentalID)
	if err != nil || rental == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		return nil, ErrRentalNotFound
	}
	if rental.UserID != userID {
		return nil, ErrRentalNotFound
	}
	if rental.Status != entity.RentalOngoing {
		return nil, ErrRentalNotOngoing
	}

	if err := s.Rentals.CompleteAndRelease(ctx, rental.ID); err != nil {
		if errors.Is(err, repo.ErrRentalNotOngoing) {
			return nil, ErrRentalNotOngoing
		}
		return nil, err
	}
	rental.Status = entity.RentalCompleted

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"rental_id":     rental.ID,
			"user_id":       userID,
			"motorcycle_id": rental.MotorcycleID,
		}).Info("motorcycle returned")
	}
	return rental, nil
}

// ListByUser is the derived per-user rental view.
func (s *RentalService) ListByUser(ctx context.Context, userID string) ([]entity.RentalEntry, error) {
	return s.Rentals.ListByUser(ctx, userID)
}

// ListAll is the flattened admin view across all users.
func (s *RentalService) ListAll(ctx context.Context) ([]entity.RentalEntry, error) {
	return s.Rentals.ListAll(ctx)
}
