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

type MotorcycleRepository struct {
	pool *pgxpool.Pool
}

func NewMotorcycleRepository(pool *pgxpool.Pool) *MotorcycleRepository {
	return &MotorcycleRepository{pool: pool}
}

const motorcycleColumns = `id, name, description, company, price, status, image, added_by, created_at, updated_at`

func scanMotorcycle(row pgx.Row) (*entity.Motorcycle, error) {
	m := &entity.Motorcycle{}
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Company, &m.Price,
		&m.Status, &m.Image, &m.AddedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MotorcycleRepository) Create(ctx context.Context, m *entity.Motorcycle) error {
	if m.Status == "" {
		m.Status = entity.MotorcycleAvailable
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO motorcycles (name, description, company, price, status, image, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, m.Name, m.Description, m.Company, m.Price, m.Status, m.Image, m.AddedBy)

	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MotorcycleRepository) GetByID(ctx context.Context, id string) (*entity.Motorcycle, error) {
	return scanMotorcycle(r.pool.QueryRow(ctx, `
		SELECT `+motorcycleColumns+`
		FROM motorcycles
		WHERE id = $1
	`, id))
}

func (r *MotorcycleRepository) Update(ctx context.Context, m *entity.Motorcycle) error {
	m.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE motorcycles
		SET name = $1, description = $2, company = $3, price = $4,
			status = $5, image = $6, updated_at = $7
		WHERE id = $8
	`, m.Name, m.Description, m.Company, m.Price, m.Status, m.Image, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the catalog entry without checking outstanding rentals;
// rentals keep their motorcycle_id with the FK constraint relaxed to allow
// the historical reference.
func (r *MotorcycleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MotorcycleRepository) List(ctx context.Context, f repository.ListFilter) ([]entity.Motorcycle, int64, error) {
	f = f.Normalize()
	pattern := "%" + f.Search + "%"

	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM motorcycles
		WHERE name ILIKE $1 OR company ILIKE $1 OR status ILIKE $1
	`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+motorcycleColumns+`
		FROM motorcycles
		WHERE name ILIKE $1 OR company ILIKE $1 OR status ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, pattern, f.Limit, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entity.Motorcycle, 0, f.Limit)
	for rows.Next() {
		m := entity.Motorcycle{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Company, &m.Price,
			&m.Status, &m.Image, &m.AddedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *MotorcycleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM motorcycles`).Scan(&n)
	return n, err
}

func (r *MotorcycleRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM motorcycles WHERE status = $1`, status).Scan(&n)
	return n, err
}

var _ repository.MotorcycleRepository = (*MotorcycleRepository)(nil)
