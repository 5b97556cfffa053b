package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/paycheck/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid ID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errTodayInvalid = errors.New("the today parameter must be a date in YYYY-MM-DD format")
	errFromInvalid  = errors.New("the from parameter must be a date in YYYY-MM-DD format")
)
