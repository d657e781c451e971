package application

import "errors"

// Sentinel errors shared by the application services. Handlers map these to
// HTTP statuses; anything unrecognized surfaces as a server error.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMotorcycleNotFound = errors.New("motorcycle not found")
	ErrRentalNotFound     = errors.New("rental not found")

	// ErrMotorcycleUnavailable is the double-rent conflict: the motorcycle
	// is already Rented.
	ErrMotorcycleUnavailable = errors.New("motorcycle is not available for rent")
	// ErrRentalNotOngoing rejects returning an already-completed rental.
	ErrRentalNotOngoing = errors.New("rental is not currently ongoing")

	ErrInvalidDate      = errors.New("invalid date format")
	ErrEndBeforeStart   = errors.New("end date must be after start date")
	ErrMissingDocuments = errors.New("user is missing required verification documents")
)
