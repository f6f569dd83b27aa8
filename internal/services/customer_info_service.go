package services

import (
	"context"
	"fmt"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repositories"

	"github.com/shopspring/decimal"
)

// CustomerInfoService stores the supplementary profile of a customer
type CustomerInfoService struct {
	infoRepo     repositories.CustomerInfoRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	adminLogger  AdminLoggerInterface
	metrics      MetricsRecorderInterface
}

func NewCustomerInfoService(
	infoRepo repositories.CustomerInfoRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	adminLogger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerInfoServiceInterface {
	return &CustomerInfoService{
		infoRepo:     infoRepo,
		customerRepo: customerRepo,
		adminLogger:  adminLogger,
		metrics:      metrics,
	}
}

// UpsertCustomerInfo creates the profile or replaces every field of the existing one
func (s *CustomerInfoService) UpsertCustomerInfo(ctx context.Context, req *dto.CustomerInfoRequest) (*dto.CustomerInfoSummary, error) {
	exists, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	deliveryCharge := decimal.Zero
	if req.DeliveryCharge != nil {
		deliveryCharge = req.DeliveryCharge.Round(2)
	}

	info := &models.CustomerInfo{
		CustomerID:     req.CustomerID,
		ContactPerson:  req.ContactPerson,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		OpeningHours:   req.OpeningHours,
		DeliveryCharge: deliveryCharge,
		Notes:          req.Notes,
	}

	if err := s.infoRepo.Upsert(ctx, info); err != nil {
		s.adminLogger.LogOperationFailed(ctx, "upsert_customer_info", err.Error())
		return nil, err
	}

	s.metrics.IncrementCounter("customer_info_upserted", nil)
	s.adminLogger.LogCustomerInfoUpserted(ctx, info.CustomerID)

	return &dto.CustomerInfoSummary{
		CustomerID:     info.CustomerID,
		ContactPerson:  info.ContactPerson,
		Phone:          info.Phone,
		Email:          info.Email,
		Website:        info.Website,
		OpeningHours:   info.OpeningHours,
		DeliveryCharge: info.DeliveryCharge,
		Notes:          info.Notes,
		UpdatedAt:      info.UpdatedAt,
	}, nil
}
