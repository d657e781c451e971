package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/pkg/response"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// Stats GET /api/admin/stats (admin)
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "platform stats", nil)
}
