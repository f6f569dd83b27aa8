package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerInfo holds supplementary profile data; at most one row per customer
type CustomerInfo struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID     int64           `gorm:"column:customer_id;not null;uniqueIndex" json:"customerId"`
	ContactPerson  string          `gorm:"type:varchar(100)" json:"contactPerson"`
	Phone          string          `gorm:"type:varchar(20)" json:"phone"`
	Email          string          `gorm:"type:varchar(255)" json:"email"`
	Website        string          `gorm:"type:varchar(255)" json:"website"`
	OpeningHours   string          `gorm:"type:varchar(100)" json:"openingHours"`
	DeliveryCharge decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"deliveryCharge"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updatedAt"`
}

func (c *CustomerInfo) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *CustomerInfo) Validate() error {
	if c.CustomerID <= 0 {
		return errors.New("customer ID is required")
	}

	if c.DeliveryCharge.IsNegative() {
		return errors.New("delivery charge cannot be negative")
	}

	return nil
}

// UpsertColumns lists the columns overwritten when the row already exists
func (CustomerInfo) UpsertColumns() []string {
	return []string{
		"contact_person",
		"phone",
		"email",
		"website",
		"opening_hours",
		"delivery_charge",
		"notes",
		"updated_at",
	}
}
