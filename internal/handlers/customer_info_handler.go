package handlers

import (
	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerInfoHandler handles supplementary customer profiles
type CustomerInfoHandler struct {
	customerInfoService services.CustomerInfoServiceInterface
	adminLogger         services.AdminLoggerInterface
}

func NewCustomerInfoHandler(customerInfoService services.CustomerInfoServiceInterface, adminLogger services.AdminLoggerInterface) *CustomerInfoHandler {
	return &CustomerInfoHandler{
		customerInfoService: customerInfoService,
		adminLogger:         adminLogger,
	}
}

// CreateCustomerInfo creates or replaces a customer's profile
// @Summary Upsert customer info
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerInfoRequest true "Customer info"
// @Success 200 {object} dto.GenericResponse{data=dto.CustomerInfoSummary} "Customer info stored"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001 - Malformed body"
// @Failure 404 {object} dto.GenericResponse "CUSTOMER_001 - Unknown customer"
// @Failure 500 {object} dto.GenericResponse "SYSTEM_002 - Collaborator failure"
// @Router /api/CustomerInfo [post]
func (h *CustomerInfoHandler) CreateCustomerInfo(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CustomerInfoRequest
	if err := c.Bind(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_customer_info", err.Error())
		return SendError(c, apperrors.MalformedPayload, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_customer_info", err.Error())
		return SendServiceError(c, err)
	}

	summary, err := h.customerInfoService.UpsertCustomerInfo(ctx, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, "Customer info saved successfully", summary)
}
