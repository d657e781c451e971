package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	"github.com/motorentals/moto-rentals-api/internal/domain/repository"
	"github.com/motorentals/moto-rentals-api/internal/interface/middleware"
	"github.com/motorentals/moto-rentals-api/pkg/response"
	"github.com/motorentals/moto-rentals-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

func listFilterFromQuery(c *gin.Context) repository.ListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return repository.ListFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
}

func (h *UserHandler) profileJSON(u *entity.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"firstName":      u.FirstName,
		"lastName":       u.LastName,
		"email":          u.Email,
		"phoneNumber":    u.PhoneNumber,
		"dob":            u.DOB,
		"isForeigner":    u.IsForeigner,
		"role":           u.Role,
		"verified":       u.Verified,
		"drivingLicense": h.docOrNil(u.DrivingLicense),
		"passport":       h.docOrNil(u.Passport),
		"created_at":     u.CreatedAt,
		"updated_at":     u.UpdatedAt,
	}
}

func (h *UserHandler) docOrNil(path string) any {
	if path == "" {
		return nil
	}
	return h.Svc.DocumentURL(path)
}

// Me GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.profileJSON(u), "profile", nil)
}

// Update PATCH /api/users/update
func (h *UserHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.profileJSON(u), "profile updated", nil)
}

// List GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	f := listFilterFromQuery(c)
	users, total, totalPages, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, gin.H{
			"id":             u.ID,
			"name":           u.FirstName + " " + u.LastName,
			"email":          u.Email,
			"role":           u.Role,
			"verified":       u.Verified,
			"isForeigner":    u.IsForeigner,
			"drivingLicense": h.docOrNil(u.DrivingLicense),
			"passport":       h.docOrNil(u.Passport),
		})
	}

	response.Success(c, http.StatusOK, out, "users", map[string]any{
		"totalUsers": total,
		"totalPages": totalPages,
		"page":       f.Normalize().Page,
		"limit":      f.Normalize().Limit,
	})
}

// Verify PATCH /api/users/verify/:id (admin)
func (h *UserHandler) Verify(c *gin.Context) {
	u, err := h.Svc.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"verified": u.Verified,
	}, "user verified successfully", nil)
}
