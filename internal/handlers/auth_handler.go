package handlers

import (
	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles operator login
type AuthHandler struct {
	authService services.AuthServiceInterface
	adminLogger services.AdminLoggerInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, adminLogger services.AdminLoggerInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		adminLogger: adminLogger,
	}
}

// ValidateLogin checks operator credentials and returns an access token
// @Summary Validate login
// @Description Authenticate an operator with username and password and receive a JWT access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginValues true "Login credentials"
// @Success 200 {object} dto.GenericResponse{data=dto.LoginResult} "Login successful"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001 - Malformed body"
// @Failure 401 {object} dto.GenericResponse "AUTH_001 - Invalid credentials"
// @Failure 403 {object} dto.GenericResponse "AUTH_005 - Account locked"
// @Failure 500 {object} dto.GenericResponse "SYSTEM_002 - Collaborator failure"
// @Router /api/ValidateLogin [post]
func (h *AuthHandler) ValidateLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginValues
	if err := c.Bind(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "validate_login", err.Error())
		return SendError(c, apperrors.MalformedPayload, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "validate_login", err.Error())
		return SendServiceError(c, err)
	}

	result, err := h.authService.ValidateCredentials(ctx, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, "Login successful", result)
}
