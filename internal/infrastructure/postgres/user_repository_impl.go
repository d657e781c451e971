package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	"github.com/motorentals/moto-rentals-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, first_name, last_name, email, password_hash, phone_number,
		dob, is_foreigner, role, verified, driving_license, passport, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.PhoneNumber, &u.DOB, &u.IsForeigner, &u.Role, &u.Verified,
		&u.DrivingLicense, &u.Passport, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, phone_number,
			dob, is_foreigner, role, verified, driving_license, passport)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber,
		u.DOB, u.IsForeigner, u.Role, u.Verified, u.DrivingLicense, u.Passport)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, password_hash = $4,
			phone_number = $5, dob = $6, is_foreigner = $7, role = $8,
			verified = $9, driving_license = $10, passport = $11, updated_at = $12
		WHERE id = $13
	`, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber,
		u.DOB, u.IsForeigner, u.Role, u.Verified, u.DrivingLicense, u.Passport,
		u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List pages over users matching the search term on first/last name or
// email. An out-of-range page yields an empty slice, not an error.
func (r *UserRepository) List(ctx context.Context, f repository.ListFilter) ([]entity.User, int64, error) {
	f = f.Normalize()
	pattern := "%" + f.Search + "%"

	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM users
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
	`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, pattern, f.Limit, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entity.User, 0, f.Limit)
	for rows.Next() {
		u := entity.User{}
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.PhoneNumber, &u.DOB, &u.IsForeigner, &u.Role, &u.Verified,
			&u.DrivingLicense, &u.Passport, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
