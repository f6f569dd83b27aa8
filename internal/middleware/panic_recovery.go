package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apperrors "restaurant-admin/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from panics and hands an UnhandledFault to the
// error handler; the panic value and stack only reach the log
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}

					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					slog.Error("Panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					err = apperrors.New(apperrors.UnhandledFault,
						apperrors.WithCause(fmt.Errorf("panic: %v", r)),
					)
				}
			}()

			return next(c)
		}
	}
}
