package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// Every handler answers with exactly one dto.GenericResponse:
//
//   - SendSuccess for the happy path.
//   - SendError when the failure code is known at the call site.
//   - SendServiceError for errors returned by services; known sentinels keep
//     their status, anything else is a collaborator failure (500).
//
// Errors returned from a handler instead of written go to the central
// translator in the middleware package.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess writes a Success envelope with HTTP 200
func SendSuccess(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, dto.Success(message, data))
}

// SendError writes a Failure envelope for code
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	return SendCodedError(c, apperrors.New(code, opts...))
}

// SendCodedError writes a Failure envelope for an already built coded error
func SendCodedError(c echo.Context, err *apperrors.Error) error {
	response := dto.Failure(string(err.Code), err.Message, getTraceID(c), err.Details...)
	return c.JSON(err.HTTPStatus(), response)
}

// SendServiceError translates an error returned by a service into a Failure envelope
func SendServiceError(c echo.Context, err error) error {
	if coded, ok := apperrors.As(err); ok {
		return SendCodedError(c, coded)
	}

	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, apperrors.CustomerNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		return SendError(c, apperrors.AuthInvalidCredentials)
	case errors.Is(err, services.ErrAccountLocked):
		return SendError(c, apperrors.AuthAccountLocked)
	case errors.Is(err, services.ErrInvalidSearchPage):
		return SendError(c, apperrors.InvalidPage)
	}

	slog.ErrorContext(c.Request().Context(), "collaborator failure",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	return SendError(c, apperrors.CollaboratorFailure,
		apperrors.WithMessage(err.Error()),
		apperrors.WithCause(err),
	)
}
