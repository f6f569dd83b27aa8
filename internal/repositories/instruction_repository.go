package repositories

import (
	"context"
	"errors"
	"fmt"

	"restaurant-admin/internal/models"

	"gorm.io/gorm"
)

// InstructionRepository handles database operations for customer instructions
type InstructionRepository struct {
	db *gorm.DB
}

// NewInstructionRepository creates a new instruction repository
func NewInstructionRepository(db *gorm.DB) InstructionRepositoryInterface {
	return &InstructionRepository{
		db: db,
	}
}

// Create stores a new instruction
func (r *InstructionRepository) Create(ctx context.Context, instruction *models.Instruction) error {
	if instruction == nil {
		return errors.New("instruction cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(instruction).Error; err != nil {
		return fmt.Errorf("failed to create instruction: %w", err)
	}

	return nil
}

// ListByCustomer returns a customer's instructions, oldest first
func (r *InstructionRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Instruction, error) {
	var instructions []*models.Instruction

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC, id ASC").
		Find(&instructions).Error; err != nil {
		return nil, fmt.Errorf("failed to list instructions: %w", err)
	}

	return instructions, nil
}
