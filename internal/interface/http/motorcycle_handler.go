package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
	"github.com/motorentals/moto-rentals-api/pkg/response"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
	"github.com/motorentals/moto-rentals-api/pkg/validation"
)

type MotorcycleHandler struct {
	Svc     *application.CatalogService
	Logger  *logrus.Logger
	BaseURL string
}

func NewMotorcycleHandler(svc *application.CatalogService, logger *logrus.Logger, baseURL string) *MotorcycleHandler {
	return &MotorcycleHandler{Svc: svc, Logger: logger, BaseURL: baseURL}
}

func (h *MotorcycleHandler) motorcycleJSON(m *entity.Motorcycle) gin.H {
	return gin.H{
		"id":          m.ID,
		"name":        m.Name,
		"description": m.Description,
		"company":     m.Company,
		"price":       m.Price,
		"status":      m.Status,
		"image":       uploader.AbsoluteURL(h.BaseURL, m.Image),
		"addedBy":     m.AddedBy,
		"createdAt":   m.CreatedAt,
		"updatedAt":   m.UpdatedAt,
	}
}

type addMotorcycleRequest struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Company     string  `form:"company" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
}

type updateMotorcycleRequest struct {
	Name        *string  `form:"name"`
	Description *string  `form:"description"`
	Company     *string  `form:"company"`
	Price       *float64 `form:"price" binding:"omitempty,gt=0"`
}

// List GET /api/motorcycles
func (h *MotorcycleHandler) List(c *gin.Context) {
	f := listFilterFromQuery(c)
	items, total, totalPages, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, h.motorcycleJSON(&items[i]))
	}
	response.Success(c, http.StatusOK, out, "motorcycles", map[string]any{
		"totalMotorcycles": total,
		"totalPages":       totalPages,
		"page":             f.Normalize().Page,
		"limit":            f.Normalize().Limit,
	})
}

// Search GET /api/motorcycles/search
func (h *MotorcycleHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// Add POST /api/motorcycles/add (admin)
func (h *MotorcycleHandler) Add(c *gin.Context) {
	var req addMotorcycleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	imageFH, _ := c.FormFile("image")
	image, closeImage, err := documentUpload(imageFH)
	if err != nil {
		serviceError(c, err)
		return
	}
	defer closeImage()

	m, err := h.Svc.Create(c.Request.Context(), application.CreateMotorcycleInput{
		Name:        req.Name,
		Description: req.Description,
		Company:     req.Company,
		Price:       req.Price,
		Image:       image,
		AddedBy:     c.GetString(middleware.CtxUserIDKey),
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.motorcycleJSON(m), "motorcycle added successfully", nil)
}

// Update PATCH /api/motorcycles/update/:id (admin)
func (h *MotorcycleHandler) Update(c *gin.Context) {
	var req updateMotorcycleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	imageFH, _ := c.FormFile("image")
	image, closeImage, err := documentUpload(imageFH)
	if err != nil {
		serviceError(c, err)
		return
	}
	defer closeImage()

	m, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.MotorcyclePatch{
		Name:        req.Name,
		Description: req.Description,
		Company:     req.Company,
		Price:       req.Price,
		Image:       image,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.motorcycleJSON(m), "motorcycle updated successfully", nil)
}

// Delete DELETE /api/motorcycles/delete/:id (admin)
func (h *MotorcycleHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "motorcycle deleted successfully", nil)
}
