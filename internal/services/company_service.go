package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repositories"
	"restaurant-admin/internal/storage"
)

const DefaultCompanyPageSize = 10

// CompanyService stores restaurants and serves paginated listings
type CompanyService struct {
	customerRepo repositories.CustomerRepositoryInterface
	adminLogger  AdminLoggerInterface
	metrics      MetricsRecorderInterface
	pageSize     int
}

// NewCompanyService creates a company service; a non-positive pageSize uses the default
func NewCompanyService(
	customerRepo repositories.CustomerRepositoryInterface,
	adminLogger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
	pageSize int,
) CompanyServiceInterface {
	if pageSize <= 0 {
		pageSize = DefaultCompanyPageSize
	}
	return &CompanyService{
		customerRepo: customerRepo,
		adminLogger:  adminLogger,
		metrics:      metrics,
		pageSize:     pageSize,
	}
}

func (s *CompanyService) CreateCompany(ctx context.Context, customer *models.MasterCustomer, attach storage.AttachFunc) (*dto.CompanySummary, error) {
	if customer == nil {
		return nil, repositories.ErrNilCustomer
	}

	var attacher repositories.LogoAttacher
	if attach != nil {
		attacher = repositories.LogoAttacher(attach)
	}

	created, err := s.customerRepo.Store(ctx, customer, attacher)
	if apperrors.HasCode(err, apperrors.FileWriteFailure) {
		s.metrics.IncrementCounter("logo_upload", map[string]string{"status": "failed"})
	}
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.adminLogger.LogOperationFailed(ctx, "create_company", err.Error())
		return nil, err
	}

	if attach != nil {
		s.metrics.IncrementCounter("logo_upload", map[string]string{"status": "succeeded"})
	}

	action := "updated"
	if created {
		action = "created"
	}
	s.metrics.IncrementCounter("company_stored", map[string]string{"action": action})
	s.adminLogger.LogCompanyCreated(ctx, customer.DID, customer.CompanyName, created, attach != nil)

	return &dto.CompanySummary{
		DID:         customer.DID,
		CompanyName: customer.CompanyName,
		City:        customer.City,
		LogoKey:     customer.LogoKey,
		Created:     created,
		UpdatedAt:   customer.UpdatedAt,
	}, nil
}

// SearchCompanies returns one page of restaurants matching search.
// An empty search lists every restaurant.
func (s *CompanyService) SearchCompanies(ctx context.Context, search string, page int) (*dto.CompanySearchResult, error) {
	if page <= 0 {
		return nil, ErrInvalidSearchPage
	}

	start := time.Now()
	search = strings.TrimSpace(search)
	offset := (page - 1) * s.pageSize

	customers, total, err := s.customerRepo.Search(ctx, repositories.CustomerSearchCriteria{Query: search}, offset, s.pageSize)
	if err != nil {
		s.metrics.IncrementCounter("company_search_request", map[string]string{"status": "failed"})
		s.adminLogger.LogOperationFailed(ctx, "search_companies", err.Error())
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	rows := make([]dto.CompanyRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, dto.CompanyRow{
			DID:           c.DID,
			CompanyName:   c.CompanyName,
			ContactPerson: c.ContactPerson,
			Phone:         c.Phone,
			Email:         c.Email,
			City:          c.City,
			LogoKey:       c.LogoKey,
		})
	}

	duration := time.Since(start)
	s.metrics.RecordProcessingTime("company_search", duration)
	s.metrics.IncrementCounter("company_search_request", map[string]string{"status": "succeeded"})

	if total == 0 {
		s.adminLogger.LogCompanySearchEmpty(ctx, search, page)
	} else {
		s.adminLogger.LogCompanySearchCompleted(ctx, search, page, total, duration.Milliseconds())
	}

	return &dto.CompanySearchResult{
		Rows:     rows,
		TotalRow: total,
		PageNo:   page,
		PageSize: s.pageSize,
	}, nil
}
