package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// LogoExtension is appended to a customer's DID to build its logo key
const LogoExtension = ".jpg"

// MasterCustomer is the canonical restaurant/customer record.
// DID is assigned by the store on insert and never changes afterwards.
type MasterCustomer struct {
	DID           int64     `gorm:"column:did;primaryKey;autoIncrement" json:"DID"`
	CompanyName   string    `gorm:"type:varchar(200);not null;index" json:"CompanyName" validate:"required,max=200"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"ContactPerson" validate:"omitempty,max=100"`
	Phone         string    `gorm:"type:varchar(20)" json:"Phone" validate:"omitempty,phone"`
	Email         string    `gorm:"type:varchar(255)" json:"Email" validate:"omitempty,email"`
	Address       string    `gorm:"type:varchar(500)" json:"Address" validate:"omitempty,max=500"`
	City          string    `gorm:"type:varchar(100);index" json:"City" validate:"omitempty,max=100"`
	State         string    `gorm:"type:varchar(100)" json:"State" validate:"omitempty,max=100"`
	PinCode       string    `gorm:"type:varchar(10)" json:"PinCode" validate:"omitempty,max=10"`
	LogoKey       string    `gorm:"type:varchar(100)" json:"LogoKey"`
	CreatedAt     time.Time `gorm:"not null" json:"CreatedAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"UpdatedAt"`
}

// TableName pins the table name used by migrations
func (MasterCustomer) TableName() string {
	return "master_customers"
}

func (m *MasterCustomer) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

func (m *MasterCustomer) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return m.Validate()
}

// Validate enforces the invariants the database relies on
func (m *MasterCustomer) Validate() error {
	if strings.TrimSpace(m.CompanyName) == "" {
		return errors.New("company name is required")
	}

	if m.DID < 0 {
		return fmt.Errorf("invalid DID %d", m.DID)
	}

	return nil
}

// IsNew reports whether the record has not been assigned a DID yet
func (m *MasterCustomer) IsNew() bool {
	return m.DID == 0
}

// LogoKeyFor returns the storage key for a customer's logo
func LogoKeyFor(did int64) string {
	return fmt.Sprintf("%d%s", did, LogoExtension)
}
