package entity

import "time"

// Rental lifecycle states.
const (
	RentalOngoing   = "Ongoing"
	RentalCompleted = "Completed"
)

// Rental is a transaction record in the ledger. TotalPrice is fixed at
// check-out time; later price edits on the motorcycle do not reprice it.
type Rental struct {
	ID           string
	UserID       string
	MotorcycleID string
	StartDate    time.Time
	EndDate      time.Time
	TotalPrice   float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RentalEntry is the flattened admin view of a rental joined with its user
// and motorcycle.
type RentalEntry struct {
	ID                string
	UserEmail         string
	MotorcycleName    string
	MotorcycleCompany string
	MotorcycleImage   string
	StartDate         time.Time
	EndDate           time.Time
	Status            string
	TotalPrice        float64
}
