package repositories

import (
	"context"

	"restaurant-admin/internal/models"
)

// LogoAttacher stores the logo of a freshly saved customer and returns its key.
// discard, when not nil, removes what was written.
type LogoAttacher func(ctx context.Context, did int64) (key string, discard func(), err error)

// CustomerSearchCriteria defines search criteria for restaurant listings
type CustomerSearchCriteria struct {
	Query string // matched against company name, contact person and city; empty matches all
}

// CustomerRepositoryInterface defines the contract for master customer operations
type CustomerRepositoryInterface interface {
	// Store inserts the customer when DID is zero and updates it otherwise.
	// attach, when not nil, runs inside the same transaction once the DID is known.
	// A logo written for a row that is then rolled back is discarded.
	Store(ctx context.Context, customer *models.MasterCustomer, attach LogoAttacher) (created bool, err error)
	GetByDID(ctx context.Context, did int64) (*models.MasterCustomer, error)
	Exists(ctx context.Context, did int64) (bool, error)
	Search(ctx context.Context, criteria CustomerSearchCriteria, offset, limit int) ([]*models.MasterCustomer, int64, error)
}

// InstructionRepositoryInterface defines the contract for instruction operations
type InstructionRepositoryInterface interface {
	Create(ctx context.Context, instruction *models.Instruction) error
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Instruction, error)
}

// CustomerInfoRepositoryInterface defines the contract for customer profile operations
type CustomerInfoRepositoryInterface interface {
	Upsert(ctx context.Context, info *models.CustomerInfo) error
	GetByCustomer(ctx context.Context, customerID int64) (*models.CustomerInfo, error)
}

// AdminUserRepositoryInterface defines the contract for admin account operations
type AdminUserRepositoryInterface interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	UpdateLoginState(ctx context.Context, user *models.AdminUser) error
}
