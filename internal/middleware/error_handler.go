package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler turns any error that escaped a handler into a Failure
// envelope. Coded errors keep their code and message, echo routing errors keep
// their status, and everything else becomes UnhandledFault with a generic message.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	coded := translate(err)
	httpStatus := coded.HTTPStatus()
	if echoErr, ok := err.(*echo.HTTPError); ok {
		httpStatus = echoErr.Code
	}

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", coded.Code,
		"status", httpStatus,
		"message", coded.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		string(coded.Code),
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	response := dto.Failure(string(coded.Code), coded.Message, traceID, coded.Details...)

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(httpStatus)
	} else {
		sendErr = c.JSON(httpStatus, response)
	}
	if sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func translate(err error) *apperrors.Error {
	if coded, ok := apperrors.As(err); ok {
		if coded.Code == apperrors.UnhandledFault {
			return apperrors.New(apperrors.UnhandledFault)
		}
		return coded
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		code := apperrors.CodeForHTTPStatus(echoErr.Code)
		if code == apperrors.UnhandledFault {
			return apperrors.New(code)
		}
		if message, ok := echoErr.Message.(string); ok && message != "" {
			return apperrors.New(code, apperrors.WithMessage(message))
		}
		return apperrors.New(code)
	}

	return apperrors.New(apperrors.UnhandledFault)
}
