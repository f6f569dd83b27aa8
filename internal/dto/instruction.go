package dto

import "time"

// ReqInput is the body of an instruction creation request
type ReqInput struct {
	CustomerID  int64  `json:"customerId" validate:"required,gt=0"`
	Instruction string `json:"instruction" validate:"required,max=2000"`
	CreatedBy   string `json:"createdBy" validate:"omitempty,max=100"`
}

// InstructionSummary is one stored instruction
type InstructionSummary struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	Instruction string    `json:"instruction"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
