package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultMaxFailedLoginAttempts = 3
	DefaultLockoutDuration        = 15 * time.Minute
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._@-]{3,100}$`)
)

// AdminUser is an operator allowed to sign in to the admin API
type AdminUser struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username            string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash        string     `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName         string     `gorm:"type:varchar(200)" json:"displayName"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedAt            *time.Time `gorm:"index" json:"lockedAt,omitempty"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updatedAt"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *AdminUser) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if !usernameRegex.MatchString(u.Username) {
		return errors.New("invalid username format")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}

func (u *AdminUser) IsLocked() bool {
	return u.LockedAt != nil
}

// LockExpired reports whether a lock set at LockedAt has outlived lockout.
// A non-positive lockout uses DefaultLockoutDuration.
func (u *AdminUser) LockExpired(now time.Time, lockout time.Duration) bool {
	if u.LockedAt == nil {
		return true
	}
	if lockout <= 0 {
		lockout = DefaultLockoutDuration
	}
	return !now.Before(u.LockedAt.Add(lockout))
}

func (u *AdminUser) Lock() {
	now := time.Now()
	u.LockedAt = &now
}

func (u *AdminUser) Unlock() {
	u.LockedAt = nil
	u.FailedLoginAttempts = 0
}

// IncrementFailedAttempts records a failed login and locks the account once
// maxAttempts consecutive failures have been seen
func (u *AdminUser) IncrementFailedAttempts(maxAttempts int) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFailedLoginAttempts
	}

	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		u.Lock()
	}
}

func (u *AdminUser) ResetFailedAttempts() {
	u.FailedLoginAttempts = 0
}

func (u *AdminUser) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

func (u *AdminUser) TableName() string {
	return "admin_users"
}
