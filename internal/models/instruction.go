package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const MaxInstructionLength = 2000

// Instruction is a free-text note attached to a customer by DID
type Instruction struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64     `gorm:"column:customer_id;not null;index" json:"customerId"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	CreatedBy   string    `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

func (i *Instruction) BeforeCreate(tx *gorm.DB) error {
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}

	return i.Validate()
}

func (i *Instruction) Validate() error {
	if i.CustomerID <= 0 {
		return errors.New("customer ID is required")
	}

	if strings.TrimSpace(i.Instruction) == "" {
		return errors.New("instruction text is required")
	}

	if len(i.Instruction) > MaxInstructionLength {
		return errors.New("instruction text is too long")
	}

	return nil
}
