package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
	"github.com/motorentals/moto-rentals-api/pkg/response"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
	"github.com/motorentals/moto-rentals-api/pkg/validation"
)

type RentalHandler struct {
	Svc     *application.RentalService
	Logger  *logrus.Logger
	BaseURL string
}

func NewRentalHandler(svc *application.RentalService, logger *logrus.Logger, baseURL string) *RentalHandler {
	return &RentalHandler{Svc: svc, Logger: logger, BaseURL: baseURL}
}

type rentRequest struct {
	RentStartDate string `json:"rentStartDate" binding:"required"`
	RentEndDate   string `json:"rentEndDate" binding:"required"`
}

func rentalJSON(r *entity.Rental) gin.H {
	return gin.H{
		"id":            r.ID,
		"userId":        r.UserID,
		"motorcycleId":  r.MotorcycleID,
		"rentStartDate": r.StartDate,
		"rentEndDate":   r.EndDate,
		"totalPrice":    r.TotalPrice,
		"status":        r.Status,
	}
}

func (h *RentalHandler) entryJSON(e *entity.RentalEntry) gin.H {
	return gin.H{
		"id":                e.ID,
		"userEmail":         e.UserEmail,
		"motorcycleName":    e.MotorcycleName,
		"motorcycleCompany": e.MotorcycleCompany,
		"motorcycleImage":   uploader.AbsoluteURL(h.BaseURL, e.MotorcycleImage),
		"rentStartDate":     e.StartDate,
		"rentEndDate":       e.EndDate,
		"status":            e.Status,
		"totalPrice":        e.TotalPrice,
	}
}

func (h *RentalHandler) entriesJSON(entries []entity.RentalEntry) []gin.H {
	out := make([]gin.H, 0, len(entries))
	for i := range entries {
		out = append(out, h.entryJSON(&entries[i]))
	}
	return out
}

// Rent POST /api/rentals/rent/:motorcycleId
func (h *RentalHandler) Rent(c *gin.Context) {
	var req rentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.Rent(
		c.Request.Context(),
		c.GetString(middleware.CtxUserIDKey),
		c.Param("motorcycleId"),
		req.RentStartDate,
		req.RentEndDate,
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rentalJSON(r), "motorcycle rented successfully", nil)
}

// Return POST /api/rentals/return/:rentalId
func (h *RentalHandler) Return(c *gin.Context) {
	r, err := h.Svc.Return(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("rentalId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rentalJSON(r), "motorcycle returned successfully", nil)
}

// Me GET /api/rentals/me
func (h *RentalHandler) Me(c *gin.Context) {
	entries, err := h.Svc.ListByUser(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.entriesJSON(entries), "your rentals", nil)
}

// All GET /api/rentals/all (admin)
func (h *RentalHandler) All(c *gin.Context) {
	entries, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.entriesJSON(entries), "all rentals", nil)
}
