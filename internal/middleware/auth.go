package middleware

import (
	"errors"

	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/handlers"
	"restaurant-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	AdminUsernameContextKey = "admin_username"
	AdminUserIDContextKey   = "admin_user_id"
)

// RequireAuth creates a middleware that requires a valid JWT access token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := tokenService.ExtractTokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				if errors.Is(err, services.ErrMissingAuthHeader) {
					return handlers.SendError(c, apperrors.AuthMissingToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidToken, apperrors.WithDetails(err.Error()))
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidToken)
			}

			c.Set(AdminUsernameContextKey, claims.Username)
			c.Set(AdminUserIDContextKey, claims.UserID)

			return next(c)
		}
	}
}
