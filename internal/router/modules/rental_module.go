package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/container"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
)

// RentalModule wires the rental lifecycle routes. Everything here is
// authenticated; the all-rentals listing is admin only.

type RentalModule struct {
	Handler *handlers.RentalHandler
}

func NewRentalModule(h *handlers.RentalHandler) *RentalModule {
	return &RentalModule{Handler: h}
}

func (m *RentalModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/rentals")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/rent/:motorcycleId", m.Handler.Rent)
		auth.POST("/return/:rentalId", m.Handler.Return)
		auth.GET("/me", m.Handler.Me)
	}

	admin := rg.Group("/rentals")
	admin.Use(middleware.Auth(container.GetJWT()), middleware.RequireAdmin())
	{
		admin.GET("/all", m.Handler.All)
	}
}
