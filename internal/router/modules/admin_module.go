package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/container"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
)

// AdminModule wires the platform dashboard routes.
// Admin: GET /api/admin/stats

type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetJWT()), middleware.RequireAdmin())
	{
		admin.GET("/stats", m.Handler.Stats)
	}
}
