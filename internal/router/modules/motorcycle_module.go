package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/container"
	handlers "github.com/motorentals/moto-rentals-api/internal/interface/http"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
)

// MotorcycleModule wires the catalog routes.
// Public: GET /api/motorcycles, GET /api/motorcycles/search
// Admin: POST /api/motorcycles/add, PATCH /api/motorcycles/update/:id,
// DELETE /api/motorcycles/delete/:id

type MotorcycleModule struct {
	Handler *handlers.MotorcycleHandler
}

func NewMotorcycleModule(h *handlers.MotorcycleHandler) *MotorcycleModule {
	return &MotorcycleModule{Handler: h}
}

func (m *MotorcycleModule) Register(rg *gin.RouterGroup) {
	rg.GET("/motorcycles", m.Handler.List)
	rg.GET("/motorcycles/search", m.Handler.Search)

	admin := rg.Group("/motorcycles")
	admin.Use(middleware.Auth(container.GetJWT()), middleware.RequireAdmin())
	{
		admin.POST("/add", m.Handler.Add)
		admin.PATCH("/update/:id", m.Handler.Update)
		admin.DELETE("/delete/:id", m.Handler.Delete)
	}
}
