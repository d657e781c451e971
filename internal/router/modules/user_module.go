package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/container"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
)

// UserModule wires profile and account-administration routes.
// User: GET /api/users/me, PATCH /api/users/update
// Admin: GET /api/users, PATCH /api/users/verify/:id

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PATCH("/update", m.Handler.Update)
	}

	admin := rg.Group("/users")
	admin.Use(middleware.Auth(container.GetJWT()), middleware.RequireAdmin())
	{
		admin.GET("", m.Handler.List)
		admin.PATCH("/verify/:id", m.Handler.Verify)
	}
}
