package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
)

func TestRentedPercentage(t *testing.T) {
	tests := []struct {
		name   string
		rented int64
		total  int64
		want   float64
	}{
		{"empty catalog", 0, 0, 0},
		{"none rented", 0, 10, 0},
		{"all rented", 10, 10, 100},
		{"one third rounds to two decimals", 1, 3, 33.33},
		{"two thirds rounds up", 2, 3, 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentedPercentage(tt.rented, tt.total))
		})
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	motorcycles := newFakeMotorcycleRepo()

	seedUser(t, users, entity.User{Email: "a@example.com"})
	seedUser(t, users, entity.User{Email: "b@example.com"})
	require.NoError(t, motorcycles.Create(ctx, &entity.Motorcycle{Name: "MT-07"}))
	require.NoError(t, motorcycles.Create(ctx, &entity.Motorcycle{Name: "CB500", Status: entity.MotorcycleRented}))

	svc := NewAdminService(users, motorcycles, nil, nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalMotorcycles)
	assert.Equal(t, float64(50), stats.RentedPercentage)
}
