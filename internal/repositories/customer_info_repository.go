package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCustomerInfoNotFound = errors.New("customer info not found")

// CustomerInfoRepository handles database operations for customer profiles
type CustomerInfoRepository struct {
	db *gorm.DB
}

// NewCustomerInfoRepository creates a new customer info repository
func NewCustomerInfoRepository(db *gorm.DB) CustomerInfoRepositoryInterface {
	return &CustomerInfoRepository{
		db: db,
	}
}

// Upsert inserts the profile or overwrites the existing row for the same customer
func (r *CustomerInfoRepository) Upsert(ctx context.Context, info *models.CustomerInfo) error {
	if info == nil {
		return errors.New("customer info cannot be nil")
	}

	info.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns(info.UpsertColumns()),
	}).Create(info).Error
	if err != nil {
		return fmt.Errorf("failed to upsert customer info: %w", err)
	}

	return nil
}

// GetByCustomer retrieves the profile of a customer
func (r *CustomerInfoRepository) GetByCustomer(ctx context.Context, customerID int64) (*models.CustomerInfo, error) {
	var info models.CustomerInfo
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerInfoNotFound
		}
		return nil, fmt.Errorf("failed to get customer info: %w", err)
	}

	return &info, nil
}
