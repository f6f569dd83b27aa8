package handlers

import (
	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/services"
	"restaurant-admin/internal/validation"

	"github.com/labstack/echo/v4"
)

// InstructionHandler handles customer instructions
type InstructionHandler struct {
	instructionService services.InstructionServiceInterface
	adminLogger        services.AdminLoggerInterface
}

// NewInstructionHandler creates a new instruction handler
func NewInstructionHandler(instructionService services.InstructionServiceInterface, adminLogger services.AdminLoggerInterface) *InstructionHandler {
	return &InstructionHandler{
		instructionService: instructionService,
		adminLogger:        adminLogger,
	}
}

// CreateInstruction adds a free-text instruction to a customer
// @Summary Create instruction
// @Tags Instructions
// @Accept json
// @Produce json
// @Param request body dto.ReqInput true "Instruction"
// @Success 200 {object} dto.GenericResponse{data=dto.InstructionSummary} "Instruction stored"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001 - Malformed body"
// @Failure 404 {object} dto.GenericResponse "CUSTOMER_001 - Unknown customer"
// @Failure 500 {object} dto.GenericResponse "SYSTEM_002 - Collaborator failure"
// @Router /api/Instruction [post]
func (h *InstructionHandler) CreateInstruction(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ReqInput
	if err := c.Bind(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_instruction", err.Error())
		return SendError(c, apperrors.MalformedPayload, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_instruction", err.Error())
		return SendServiceError(c, err)
	}

	summary, err := h.instructionService.AddInstruction(ctx, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, "Instruction saved successfully", summary)
}

// LoadInstructions lists a customer's instructions oldest first
// @Summary Load instructions
// @Tags Instructions
// @Produce json
// @Param customerid query int true "Customer DID"
// @Success 200 {object} dto.GenericResponse{data=[]dto.InstructionSummary} "Instructions"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001 - Missing or invalid customerid"
// @Failure 404 {object} dto.GenericResponse "CUSTOMER_001 - Unknown customer"
// @Failure 500 {object} dto.GenericResponse "SYSTEM_002 - Collaborator failure"
// @Router /api/Instruction [get]
func (h *InstructionHandler) LoadInstructions(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := validation.ParseCustomerID(c.QueryParam("customerid"))
	if err != nil {
		h.adminLogger.LogValidationFailure(ctx, "load_instructions", err.Error())
		return SendServiceError(c, err)
	}

	instructions, err := h.instructionService.LoadInstructions(ctx, customerID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, "Instructions retrieved successfully", instructions)
}
