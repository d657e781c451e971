package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	"github.com/motorentals/moto-rentals-api/internal/domain/repository"
)

type RentalRepository struct {
	pool *pgxpool.Pool
}

func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

// CreateAndMarkRented performs the check-out transition atomically. The
// status flip is conditional on the motorcycle still being Available, so two
// concurrent renters cannot both succeed: the loser sees zero rows updated
// and the transaction rolls back.
func (r *RentalRepository) CreateAndMarkRented(ctx context.Context, rental *entity.Rental) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE motorcycles
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, entity.MotorcycleRented, rental.MotorcycleID, entity.MotorcycleAvailable)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrMotorcycleUnavailable
	}

	rental.Status = entity.RentalOngoing
	row := tx.QueryRow(ctx, `
		INSERT INTO rentals (user_id, motorcycle_id, start_date, end_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, rental.UserID, rental.MotorcycleID, rental.StartDate, rental.EndDate,
		rental.TotalPrice, rental.Status)
	if err := row.Scan(&rental.ID, &rental.CreatedAt, &rental.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CompleteAndRelease performs the return transition atomically, guarded the
// same way: completing an already-completed rental matches no row.
func (r *RentalRepository) CompleteAndRelease(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var motorcycleID string
	err = tx.QueryRow(ctx, `
		UPDATE rentals
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
		RETURNING motorcycle_id
	`, entity.RentalCompleted, id, entity.RentalOngoing).Scan(&motorcycleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrRentalNotOngoing
		}
		return err
	}

	// The motorcycle may have been deleted by an admin while rented; the
	// rental still completes in that case.
	if _, err := tx.Exec(ctx, `
		UPDATE motorcycles
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, entity.MotorcycleAvailable, motorcycleID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *RentalRepository) GetByID(ctx context.Context, id string) (*entity.Rental, error) {
	rental := &entity.Rental{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, motorcycle_id, start_date, end_date, total_price, status, created_at, updated_at
		FROM rentals
		WHERE id = $1
	`, id).Scan(&rental.ID, &rental.UserID, &rental.MotorcycleID, &rental.StartDate,
		&rental.EndDate, &rental.TotalPrice, &rental.Status, &rental.CreatedAt, &rental.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rental, nil
}

const rentalEntryQuery = `
	SELECT r.id, u.email,
		coalesce(m.name, 'Unknown'), coalesce(m.company, 'Unknown'), coalesce(m.image, ''),
		r.start_date, r.end_date, r.status, r.total_price
	FROM rentals r
	JOIN users u ON u.id = r.user_id
	LEFT JOIN motorcycles m ON m.id = r.motorcycle_id`

func (r *RentalRepository) ListByUser(ctx context.Context, userID string) ([]entity.RentalEntry, error) {
	rows, err := r.pool.Query(ctx, rentalEntryQuery+`
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *RentalRepository) ListAll(ctx context.Context) ([]entity.RentalEntry, error) {
	rows, err := r.pool.Query(ctx, rentalEntryQuery+`
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]entity.RentalEntry, error) {
	entries := make([]entity.RentalEntry, 0)
	for rows.Next() {
		e := entity.RentalEntry{}
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.MotorcycleName, &e.MotorcycleCompany,
			&e.MotorcycleImage, &e.StartDate, &e.EndDate, &e.Status, &e.TotalPrice); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ repository.RentalRepository = (*RentalRepository)(nil)
