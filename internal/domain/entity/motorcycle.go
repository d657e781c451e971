package entity

import "time"

// Motorcycle availability states. A motorcycle is Rented while exactly one
// Ongoing rental references it.
const (
	MotorcycleAvailable = "Available"
	MotorcycleRented    = "Rented"
)

// Motorcycle is a catalog entry.
type Motorcycle struct {
	ID          string
	Name        string
	Description string
	Company     string
	Price       float64 // per day
	Status      string
	Image       string // relative upload path or absolute URL
	AddedBy     string // admin user id
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
