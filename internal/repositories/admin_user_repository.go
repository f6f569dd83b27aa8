package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-admin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAdminUserNotFound      = errors.New("admin user not found")
	ErrAdminUserAlreadyExists = errors.New("admin user already exists")
)

// AdminUserRepository handles database operations for admin accounts
type AdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *gorm.DB) AdminUserRepositoryInterface {
	return &AdminUserRepository{
		db: db,
	}
}

// Create creates a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrAdminUserAlreadyExists
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin user by username, case-insensitively
func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser

	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", strings.TrimSpace(username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin user by username: %w", err)
	}

	return &user, nil
}

// UpdateLoginState persists failed attempts, lock and last login
func (r *AdminUserRepository) UpdateLoginState(ctx context.Context, user *models.AdminUser) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(&models.AdminUser{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"failed_login_attempts": user.FailedLoginAttempts,
			"locked_at":             user.LockedAt,
			"last_login_at":         user.LastLoginAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update login state: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrAdminUserNotFound
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
