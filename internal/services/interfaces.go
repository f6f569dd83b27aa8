package services

import (
	"context"
	"time"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/storage"
)

// AuthServiceInterface validates operator credentials and issues access tokens
type AuthServiceInterface interface {
	ValidateCredentials(ctx context.Context, credentials *dto.LoginValues) (*dto.LoginResult, error)
}

// TokenServiceInterface issues and verifies JWT access tokens
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.AdminUser) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface hashes and compares passwords
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// CompanyServiceInterface registers and lists restaurants
type CompanyServiceInterface interface {
	// CreateCompany stores the customer and, when attach is not nil, its logo.
	// A customer with a DID is updated in place.
	CreateCompany(ctx context.Context, customer *models.MasterCustomer, attach storage.AttachFunc) (*dto.CompanySummary, error)
	SearchCompanies(ctx context.Context, search string, page int) (*dto.CompanySearchResult, error)
}

// InstructionServiceInterface manages free-text instructions per customer
type InstructionServiceInterface interface {
	AddInstruction(ctx context.Context, input *dto.ReqInput) (*dto.InstructionSummary, error)
	LoadInstructions(ctx context.Context, customerID int64) ([]dto.InstructionSummary, error)
}

// CustomerInfoServiceInterface stores supplementary customer profiles
type CustomerInfoServiceInterface interface {
	UpsertCustomerInfo(ctx context.Context, info *dto.CustomerInfoRequest) (*dto.CustomerInfoSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// AdminLoggerInterface writes structured events for the admin API
type AdminLoggerInterface interface {
	LogLoginSucceeded(ctx context.Context, username string)
	LogLoginFailed(ctx context.Context, username string, reason string)
	LogCompanyCreated(ctx context.Context, did int64, companyName string, created bool, hasLogo bool)
	LogCompanySearchCompleted(ctx context.Context, search string, page int, totalRows int64, durationMs int64)
	LogCompanySearchEmpty(ctx context.Context, search string, page int)
	LogInstructionAdded(ctx context.Context, customerID int64, instructionID int64)
	LogInstructionsLoaded(ctx context.Context, customerID int64, count int)
	LogCustomerInfoUpserted(ctx context.Context, customerID int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogOperationFailed(ctx context.Context, operation string, errorMsg string)
}
