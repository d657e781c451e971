package application

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
	"github.com/motorentals/moto-rentals-api/pkg/helpers"
)

const statsCacheKey = "admin:stats"
const statsCacheTTL = 30 * time.Second

// AdminService serves the read-only dashboard aggregates.
type AdminService struct {
	Users       repo.UserRepository
	Motorcycles repo.MotorcycleRepository
	Redis       *redis.Client
	Logger      *logrus.Logger
}

func NewAdminService(users repo.UserRepository, motorcycles repo.MotorcycleRepository, rdb *redis.Client, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Motorcycles: motorcycles, Redis: rdb, Logger: logger}
}

// Stats are the dashboard counters. RentedPercentage is rounded to two
// decimals and zero for an empty catalog.
type Stats struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalMotorcycles int64   `json:"totalMotorcycles"`
	RentedPercentage float64 `json:"rentedPercentage"`
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	if s.Redis != nil {
		var cached Stats
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, statsCacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMotorcycles, err := s.Motorcycles.Count(ctx)
	if err != nil {
		return nil, err
	}
	rented, err := s.Motorcycles.CountByStatus(ctx, entity.MotorcycleRented)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalUsers:       totalUsers,
		TotalMotorcycles: totalMotorcycles,
		RentedPercentage: RentedPercentage(rented, totalMotorcycles),
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, statsCacheKey, stats, statsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("stats cache write failed")
		}
	}
	return stats, nil
}

// RentedPercentage computes rented/total as a percentage with two-decimal
// rounding; 0 when the catalog is empty.
func RentedPercentage(rented, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(rented)/float64(total)*100*100) / 100
}
