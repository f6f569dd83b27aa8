package services

import (
	"context"
	"log/slog"
	"time"
)

// AdminLogger provides structured logging for admin API operations
type AdminLogger struct {
	logger *slog.Logger
}

// NewAdminLogger creates a new admin logger
func NewAdminLogger(logger *slog.Logger) AdminLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminLogger{
		logger: logger,
	}
}

// LogLoginSucceeded logs a successful operator login
func (l *AdminLogger) LogLoginSucceeded(ctx context.Context, username string) {
	l.logger.InfoContext(ctx, "login succeeded",
		slog.String("event_type", "login_succeeded"),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogLoginFailed logs a rejected login; the password is never passed in
func (l *AdminLogger) LogLoginFailed(ctx context.Context, username string, reason string) {
	l.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.String("username", username),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCompanyCreated logs a restaurant being stored
func (l *AdminLogger) LogCompanyCreated(ctx context.Context, did int64, companyName string, created bool, hasLogo bool) {
	l.logger.InfoContext(ctx, "company stored",
		slog.String("event_type", "company_stored"),
		slog.Int64("did", did),
		slog.String("company_name", companyName),
		slog.Bool("created", created),
		slog.Bool("has_logo", hasLogo),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *AdminLogger) LogCompanySearchCompleted(ctx context.Context, search string, page int, totalRows int64, durationMs int64) {
	l.logger.InfoContext(ctx, "company search completed",
		slog.String("event_type", "company_search_completed"),
		slog.String("search", search),
		slog.Int("page", page),
		slog.Int64("total_rows", totalRows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogCompanySearchEmpty warns that a search matched nothing
func (l *AdminLogger) LogCompanySearchEmpty(ctx context.Context, search string, page int) {
	l.logger.WarnContext(ctx, "company search returned no rows",
		slog.String("event_type", "company_search_empty"),
		slog.String("search", search),
		slog.Int("page", page),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *AdminLogger) LogInstructionAdded(ctx context.Context, customerID int64, instructionID int64) {
	l.logger.InfoContext(ctx, "instruction added",
		slog.String("event_type", "instruction_added"),
		slog.Int64("customer_id", customerID),
		slog.Int64("instruction_id", instructionID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *AdminLogger) LogInstructionsLoaded(ctx context.Context, customerID int64, count int) {
	l.logger.InfoContext(ctx, "instructions loaded",
		slog.String("event_type", "instructions_loaded"),
		slog.Int64("customer_id", customerID),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *AdminLogger) LogCustomerInfoUpserted(ctx context.Context, customerID int64) {
	l.logger.InfoContext(ctx, "customer info stored",
		slog.String("event_type", "customer_info_upserted"),
		slog.Int64("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogValidationFailure logs a rejected request payload
func (l *AdminLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	l.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogOperationFailed logs a collaborator failure
func (l *AdminLogger) LogOperationFailed(ctx context.Context, operation string, errorMsg string) {
	l.logger.ErrorContext(ctx, "operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
