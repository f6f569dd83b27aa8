package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInfoRequest is the body of a customer-info upsert
type CustomerInfoRequest struct {
	CustomerID     int64            `json:"customerId" validate:"required,gt=0"`
	ContactPerson  string           `json:"contactPerson" validate:"omitempty,max=100"`
	Phone          string           `json:"phone" validate:"omitempty,phone"`
	Email          string           `json:"email" validate:"omitempty,email"`
	Website        string           `json:"website" validate:"omitempty,url,max=255"`
	OpeningHours   string           `json:"openingHours" validate:"omitempty,max=100"`
	DeliveryCharge *decimal.Decimal `json:"deliveryCharge" validate:"omitempty,gte=0"`
	Notes          string           `json:"notes" validate:"omitempty,max=2000"`
}

// CustomerInfoSummary is returned after the profile is stored
type CustomerInfoSummary struct {
	CustomerID     int64           `json:"customerId"`
	ContactPerson  string          `json:"contactPerson,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Website        string          `json:"website,omitempty"`
	OpeningHours   string          `json:"openingHours,omitempty"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	Notes          string          `json:"notes,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
