package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend read failures: tagged by entity, surfaced as a gateway problem.
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		log.Error().Err(fe.Err).Str("entity", fe.Entity).Msg("backend fetch failed")
		return http.StatusBadGateway, fe.Error()
	}

	// Refund workflow failures: tagged by failing step.
	var re *domain.RefundError
	if errors.As(err, &re) {
		log.Error().Err(re.Err).Str("reason", re.Reason).Msg("refund failed")
		return http.StatusBadGateway, re.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "missing or invalid credentials"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrOperationNotFound):
		return http.StatusNotFound, "operation not found"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "admin account not found"
	case errors.Is(err, domain.ErrAdminExists):
		return http.StatusConflict, "admin account already exists"
	case errors.Is(err, domain.ErrRefundDuplicate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRefundInvalid):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrAddCreditFailed):
		log.Error().Err(err).Msg("credit adjustment failed")
		return http.StatusBadGateway, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
