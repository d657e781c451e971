package router

import (
	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/internal/container"
	pginfra "github.com/motorentals/moto-rentals-api/internal/infrastructure/postgres"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	motorcycles := pginfra.NewMotorcycleRepository(pool)
	rentals := pginfra.NewRentalRepository(pool)

	authSvc := application.NewAuthService(
		users,
		container.GetJWT(),
		container.GetUploader(),
		container.GetRabbitPub(),
		logger,
		cfg.BcryptCost,
	)
	userSvc := application.NewUserService(
		users,
		container.GetRabbitPub(),
		logger,
		cfg.BaseURL,
		cfg.VerifyRequireDocs,
	)
	catalogSvc := application.NewCatalogService(
		motorcycles,
		container.GetUploader(),
		logger,
		container.GetES(),
		cfg.ESCatalogIndex,
	)
	rentalSvc := application.NewRentalService(rentals, motorcycles, logger)
	adminSvc := application.NewAdminService(users, motorcycles, container.GetRedis(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewMotorcycleModule(handlers.NewMotorcycleHandler(catalogSvc, logger, cfg.BaseURL)))
	r.Add(modules.NewRentalModule(handlers.NewRentalHandler(rentalSvc, logger, cfg.BaseURL)))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger)))
}
