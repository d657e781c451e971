package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/motorentals/moto-rentals-api/config"
	"github.com/motorentals/moto-rentals-api/pkg/helpers"
)

// Seeds the default admin account. Safe to run repeatedly: the upsert keeps
// an existing admin's password hash current with ADMIN_PASSWORD.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, password_hash, dob, role, verified)
		VALUES ('Admin', 'User', $1, $2, '1990-01-01', 'admin', true)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = 'admin', verified = true
		RETURNING id
	`, cfg.AdminEmail, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, cfg.AdminEmail)
}
