package handlers

import (
	"restaurant-admin/internal/services"
	"restaurant-admin/internal/storage"
	"restaurant-admin/internal/validation"

	"github.com/labstack/echo/v4"
)

// RestaurantHandler handles restaurant registration and listing
type RestaurantHandler struct {
	companyService  services.CompanyServiceInterface
	resolver        *storage.Resolver
	adminLogger     services.AdminLoggerInterface
	maxUploadMemory int64
}

// NewRestaurantHandler creates a new restaurant handler.
// A non-positive maxUploadMemory uses validation.DefaultMaxUploadMemory.
func NewRestaurantHandler(
	companyService services.CompanyServiceInterface,
	resolver *storage.Resolver,
	adminLogger services.AdminLoggerInterface,
	maxUploadMemory int64,
) *RestaurantHandler {
	if maxUploadMemory <= 0 {
		maxUploadMemory = validation.DefaultMaxUploadMemory
	}
	return &RestaurantHandler{
		companyService:  companyService,
		resolver:        resolver,
		adminLogger:     adminLogger,
		maxUploadMemory: maxUploadMemory,
	}
}

// CreateRestaurant stores a restaurant record and its optional logo
// @Summary Create restaurant
// @Description Register a restaurant from the JSON in form field "customerdata"; an optional "file" is stored as {DID}.jpg. A record with a DID is updated.
// @Tags Restaurants
// @Accept multipart/form-data
// @Produce json
// @Param customerdata formData string true "MasterCustomer JSON"
// @Param file formData file false "Logo image"
// @Success 200 {object} dto.GenericResponse{data=dto.CompanySummary} "Restaurant stored"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001/PAYLOAD_003 - Malformed or unreadable payload"
// @Failure 404 {object} dto.GenericResponse "CUSTOMER_001 - DID does not exist"
// @Failure 500 {object} dto.GenericResponse "STORAGE_001/SYSTEM_002 - Logo or store failure"
// @Router /api/Restaurant [post]
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := validation.ReadCustomerForm(c.Request(), h.maxUploadMemory)
	if err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_restaurant", err.Error())
		return SendServiceError(c, err)
	}

	customer, err := validation.ParseCustomer(form.RawCustomerJSON)
	if err != nil {
		h.adminLogger.LogValidationFailure(ctx, "create_restaurant", err.Error())
		return SendServiceError(c, err)
	}

	summary, err := h.companyService.CreateCompany(ctx, customer, h.resolver.Attacher(form.UploadedFile))
	if err != nil {
		return SendServiceError(c, err)
	}

	message := "Restaurant updated successfully"
	if summary.Created {
		message = "Restaurant created successfully"
	}

	return SendSuccess(c, message, summary)
}

// SearchRestaurants lists one page of restaurants
// @Summary Search restaurants
// @Description Paginated restaurant listing filtered by company name, contact person or city. totalrow is always present.
// @Tags Restaurants
// @Produce json
// @Param search query string false "Search text"
// @Param pageno query int true "1-based page number"
// @Success 200 {object} dto.GenericResponse{data=dto.CompanySearchResult} "Search results"
// @Failure 400 {object} dto.GenericResponse "PAYLOAD_001/PAYLOAD_002 - Missing or invalid pageno"
// @Failure 500 {object} dto.GenericResponse "SYSTEM_002 - Collaborator failure"
// @Router /api/Restaurant [get]
func (h *RestaurantHandler) SearchRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	search, err := validation.ParseCompanySearch(c.QueryParams())
	if err != nil {
		h.adminLogger.LogValidationFailure(ctx, "search_restaurants", err.Error())
		return SendServiceError(c, err)
	}

	result, err := h.companyService.SearchCompanies(ctx, search.Search, search.PageNo)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, "Restaurants retrieved successfully", result)
}
