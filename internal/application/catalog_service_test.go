package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
)

func TestCatalogCreate(t *testing.T) {
	ctx := context.Background()
	up := &fakeUploader{}
	svc := NewCatalogService(newFakeMotorcycleRepo(), up, nil, nil, "")

	m, err := svc.Create(ctx, CreateMotorcycleInput{
		Name:        "MT-07",
		Description: "Naked twin",
		Company:     "Yamaha",
		Price:       55,
		AddedBy:     "admin-1",
		Image: &DocumentUpload{
			Reader:      strings.NewReader("img"),
			Filename:    "mt07.jpg",
			ContentType: "image/jpeg",
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, entity.MotorcycleAvailable, m.Status)
	assert.Equal(t, "/uploads/motorcycles/mt07.jpg", m.Image)
}

func TestCatalogUpdate(t *testing.T) {
	ctx := context.Background()
	motorcycles := newFakeMotorcycleRepo()
	svc := NewCatalogService(motorcycles, &fakeUploader{}, nil, nil, "")

	m, err := svc.Create(ctx, CreateMotorcycleInput{Name: "MT-07", Company: "Yamaha", Price: 55})
	require.NoError(t, err)

	t.Run("patches only present fields", func(t *testing.T) {
		newPrice := 60.0
		updated, err := svc.Update(ctx, m.ID, MotorcyclePatch{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 60.0, updated.Price)
		assert.Equal(t, "MT-07", updated.Name)
		assert.Equal(t, "Yamaha", updated.Company)
	})

	t.Run("status survives attribute edits", func(t *testing.T) {
		stored, err := motorcycles.GetByID(ctx, m.ID)
		require.NoError(t, err)
		stored.Status = entity.MotorcycleRented
		require.NoError(t, motorcycles.Update(ctx, stored))

		name := "MT-07 ABS"
		updated, err := svc.Update(ctx, m.ID, MotorcyclePatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, entity.MotorcycleRented, updated.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		_, err := svc.Update(ctx, "missing", MotorcyclePatch{Name: &name})
		assert.ErrorIs(t, err, ErrMotorcycleNotFound)
	})
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	motorcycles := newFakeMotorcycleRepo()
	rentals := newFakeRentalRepo(motorcycles)
	catalog := NewCatalogService(motorcycles, &fakeUploader{}, nil, nil, "")
	rentalSvc := NewRentalService(rentals, motorcycles, nil)

	m, err := catalog.Create(ctx, CreateMotorcycleInput{Name: "MT-07", Company: "Yamaha", Price: 55})
	require.NoError(t, err)

	r, err := rentalSvc.Rent(ctx, "user-1", m.ID, "2025-06-01", "2025-06-02")
	require.NoError(t, err)

	// Deleting a motorcycle with an outstanding rental leaves the rental
	// intact with its historical reference.
	require.NoError(t, catalog.Delete(ctx, m.ID))

	_, err = catalog.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrMotorcycleNotFound)

	entries, err := rentalSvc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Unknown", entries[0].MotorcycleName)
	assert.Equal(t, r.TotalPrice, entries[0].TotalPrice)

	// The return still completes.
	returned, err := rentalSvc.Return(ctx, "user-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalCompleted, returned.Status)
}

func TestCatalogDeleteStoreFailure(t *testing.T) {
	ctx := context.Background()
	outage := errors.New("connection refused")
	svc := NewCatalogService(&failingMotorcycleRepo{err: outage}, &fakeUploader{}, nil, nil, "")

	err := svc.Delete(ctx, "moto-1")
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrMotorcycleNotFound)

	_, err = svc.Get(ctx, "moto-1")
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrMotorcycleNotFound)
}

func TestCatalogListPastLastPage(t *testing.T) {
	ctx := context.Background()
	motorcycles := newFakeMotorcycleRepo()
	svc := NewCatalogService(motorcycles, &fakeUploader{}, nil, nil, "")

	for _, name := range []string{"MT-07", "CB500", "Z650"} {
		_, err := svc.Create(ctx, CreateMotorcycleInput{Name: name, Company: "x", Price: 10})
		require.NoError(t, err)
	}

	items, total, totalPages, err := svc.List(ctx, repo.ListFilter{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), totalPages)

	// The last real page is a partial one.
	items, _, _, err = svc.List(ctx, repo.ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
