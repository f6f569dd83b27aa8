package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repositories"
)

// AuthService validates operator credentials
type AuthService struct {
	adminRepo         repositories.AdminUserRepositoryInterface
	passwordService   PasswordServiceInterface
	tokenService      TokenServiceInterface
	adminLogger       AdminLoggerInterface
	metrics           MetricsRecorderInterface
	maxFailedAttempts int
	lockoutDuration   time.Duration
	logger            *slog.Logger
}

// NewAuthService creates a new authentication service. A locked account is
// released once lockoutDuration has passed since the lock.
func NewAuthService(
	adminRepo repositories.AdminUserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	adminLogger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
	maxFailedAttempts int,
	lockoutDuration time.Duration,
	logger *slog.Logger,
) AuthServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		adminRepo:         adminRepo,
		passwordService:   passwordService,
		tokenService:      tokenService,
		adminLogger:       adminLogger,
		metrics:           metrics,
		maxFailedAttempts: maxFailedAttempts,
		lockoutDuration:   lockoutDuration,
		logger:            logger,
	}
}

// ValidateCredentials checks the username and password and returns a signed access token
func (s *AuthService) ValidateCredentials(ctx context.Context, credentials *dto.LoginValues) (*dto.LoginResult, error) {
	if credentials == nil {
		return nil, ErrInvalidCredentials
	}

	username := strings.TrimSpace(credentials.Username)

	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminUserNotFound) {
			s.recordFailure(ctx, username, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.IsLocked() {
		if !user.LockExpired(time.Now(), s.lockoutDuration) {
			s.recordFailure(ctx, username, "account_locked")
			return nil, ErrAccountLocked
		}
		user.Unlock()
	}

	if !s.passwordService.ComparePassword(credentials.Password, user.PasswordHash) {
		user.IncrementFailedAttempts(s.maxFailedAttempts)
		if err := s.adminRepo.UpdateLoginState(ctx, user); err != nil {
			s.logger.Error("failed to update login attempts",
				"error", err,
				"user_id", user.ID,
				"username", user.Username)
		}

		if user.IsLocked() {
			s.recordFailure(ctx, username, "account_locked_now")
			return nil, ErrAccountLocked
		}

		s.recordFailure(ctx, username, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	user.ResetFailedAttempts()
	user.UpdateLastLogin()
	if err := s.adminRepo.UpdateLoginState(ctx, user); err != nil {
		s.logger.Warn("failed to record login",
			"error", err,
			"user_id", user.ID,
			"username", user.Username)
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.adminLogger.LogLoginSucceeded(ctx, user.Username)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_succeeded"})

	return loginResult(user, token, expiresAt), nil
}

func (s *AuthService) recordFailure(ctx context.Context, username, reason string) {
	s.adminLogger.LogLoginFailed(ctx, username, reason)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": reason})
}

func loginResult(user *models.AdminUser, token string, expiresAt time.Time) *dto.LoginResult {
	return &dto.LoginResult{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}
}
