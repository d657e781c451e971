package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/pkg/response"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
)

// serviceError maps application sentinels onto HTTP statuses. Unknown
// errors surface as 500 with the underlying message; acceptable for an
// internal tool.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrMotorcycleNotFound),
		errors.Is(err, application.ErrRentalNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrMotorcycleUnavailable):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrRentalNotOngoing),
		errors.Is(err, application.ErrInvalidDate),
		errors.Is(err, application.ErrEndBeforeStart),
		errors.Is(err, application.ErrMissingDocuments),
		errors.Is(err, uploader.ErrUnsupportedType):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "server error", err.Error())
	}
}
