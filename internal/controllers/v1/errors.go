package v1

import (
	"errors"
	"net/http"

	"github.com/daily-envelope/backend/internal/httperror"
	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/session"
	"github.com/daily-envelope/backend/internal/storage"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate HTTP status for an engine error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrExpenseNotFound),
		errors.Is(err, session.ErrNotStarted):
		return http.StatusNotFound

	case errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrInvalidStart),
		errors.Is(err, httputil.ErrNotANumber):
		return http.StatusBadRequest

	case errors.Is(err, storage.ErrUnavailable):
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}

// renderError writes the error response for an engine error. Errors that do
// not map to a known sentinel are logged with the request id and replaced
// with a generic message.
func renderError(c *gin.Context, err error) {
	s := status(err)

	if s == http.StatusInternalServerError && !errors.Is(err, storage.ErrUnavailable) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
		err = models.ErrGeneral
	}

	c.JSON(s, httperror.New(err))
}
