package handlers

import (
	"restaurant-admin/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared validation rules
type CustomValidator struct{}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{}
}

// Validate implements the echo.Validator interface.
// Failures come back as MalformedPayload with one detail per field.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Struct(i)
}
