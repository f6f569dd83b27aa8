package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repositories"
)

// InstructionService records free-text instructions against existing customers
type InstructionService struct {
	instructionRepo repositories.InstructionRepositoryInterface
	customerRepo    repositories.CustomerRepositoryInterface
	adminLogger     AdminLoggerInterface
	metrics         MetricsRecorderInterface
}

func NewInstructionService(
	instructionRepo repositories.InstructionRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	adminLogger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
) InstructionServiceInterface {
	return &InstructionService{
		instructionRepo: instructionRepo,
		customerRepo:    customerRepo,
		adminLogger:     adminLogger,
		metrics:         metrics,
	}
}

func (s *InstructionService) AddInstruction(ctx context.Context, input *dto.ReqInput) (*dto.InstructionSummary, error) {
	if err := s.requireCustomer(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	instruction := &models.Instruction{
		CustomerID:  input.CustomerID,
		Instruction: strings.TrimSpace(input.Instruction),
		CreatedBy:   strings.TrimSpace(input.CreatedBy),
	}

	if err := s.instructionRepo.Create(ctx, instruction); err != nil {
		s.adminLogger.LogOperationFailed(ctx, "add_instruction", err.Error())
		return nil, err
	}

	s.metrics.IncrementCounter("instruction_added", nil)
	s.adminLogger.LogInstructionAdded(ctx, instruction.CustomerID, instruction.ID)

	summary := toInstructionSummary(instruction)
	return &summary, nil
}

// LoadInstructions returns the customer's instructions oldest first
func (s *InstructionService) LoadInstructions(ctx context.Context, customerID int64) ([]dto.InstructionSummary, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	instructions, err := s.instructionRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.adminLogger.LogOperationFailed(ctx, "load_instructions", err.Error())
		return nil, err
	}

	summaries := make([]dto.InstructionSummary, 0, len(instructions))
	for _, instruction := range instructions {
		summaries = append(summaries, toInstructionSummary(instruction))
	}

	s.adminLogger.LogInstructionsLoaded(ctx, customerID, len(summaries))

	return summaries, nil
}

func (s *InstructionService) requireCustomer(ctx context.Context, customerID int64) error {
	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return ErrCustomerNotFound
	}
	return nil
}

func toInstructionSummary(instruction *models.Instruction) dto.InstructionSummary {
	return dto.InstructionSummary{
		ID:          instruction.ID,
		CustomerID:  instruction.CustomerID,
		Instruction: instruction.Instruction,
		CreatedBy:   instruction.CreatedBy,
		CreatedAt:   instruction.CreatedAt,
	}
}
