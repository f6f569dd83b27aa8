package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-admin/internal/dto"
)

func TestValidator_Phone(t *testing.T) {
	v := NewValidator()

	valid := []string{"9876543210", "+919876543210", "020-2567 8899"}
	for _, phone := range valid {
		assert.NoError(t, v.GetValidate().Var(phone, "phone"), phone)
	}

	invalid := []string{"", "12", "phone", "+-1234567"}
	for _, phone := range invalid {
		assert.Error(t, v.GetValidate().Var(phone, "phone"), phone)
	}
}

func TestValidator_DecimalAndTagNames(t *testing.T) {
	v := NewValidator()

	negative := decimal.NewFromInt(-2)
	err := v.Struct(&dto.CustomerInfoRequest{CustomerID: 1, DeliveryCharge: &negative})
	require.Error(t, err)
	assert.Equal(t, []string{"deliveryCharge: must be greater than or equal to 0"}, FieldErrors(err))

	positive := decimal.RequireFromString("49.50")
	assert.NoError(t, v.Struct(&dto.CustomerInfoRequest{CustomerID: 1, DeliveryCharge: &positive}))
	assert.NoError(t, v.Struct(&dto.CustomerInfoRequest{CustomerID: 1}))
}

func TestFieldErrors(t *testing.T) {
	err := NewValidator().Struct(&dto.LoginValues{})
	assert.ElementsMatch(t, []string{"username: is required", "password: is required"}, FieldErrors(err))

	assert.Equal(t, []string{"boom"}, FieldErrors(errors.New("boom")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
