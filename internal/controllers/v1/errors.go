package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrTargetsRevisionConflict):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errIDMissing           = errors.New("the id must be set")
	errIDParameter         = errors.New("the id parameter must be set")
	errCategoryIDParameter = errors.New("the categoryId parameter must be set")
	errUserMismatch        = fmt.Errorf("%w: the userId parameter must be your own user ID", auth.ErrUnauthorized)
)
