package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant-admin/internal/config"
	"restaurant-admin/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.MasterCustomer{},
		&models.Instruction{},
		&models.CustomerInfo{},
		&models.AdminUser{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection; used by the health endpoint
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_master_customers_company_name_lower ON master_customers(LOWER(company_name))",
		"CREATE INDEX IF NOT EXISTS idx_master_customers_city_lower ON master_customers(LOWER(city))",
		"CREATE INDEX IF NOT EXISTS idx_instructions_customer_created ON instructions(customer_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_admin_users_username_lower ON admin_users(LOWER(username))",
	}

	var failed int
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d indexes could not be created", failed, len(queries))
	}

	return nil
}

// SeedAdminUser creates the configured admin account unless it already exists
func (db *DB) SeedAdminUser(ctx context.Context, username, password, displayName string, bcryptCost int) (*models.AdminUser, error) {
	var existing models.AdminUser
	err := db.DB.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}

	if err := db.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, nil
}

// Initialize connects, migrates and seeds the database
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); err != nil {
		slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	if cfg.Security.AdminUsername != "" {
		user, err := db.SeedAdminUser(ctx, cfg.Security.AdminUsername, cfg.Security.AdminPassword, cfg.Security.AdminDisplayName, cfg.Security.BCryptCost)
		if err != nil {
			return nil, err
		}
		slog.Info("Admin user ready", "username", user.Username)
	}

	slog.Info("Database initialized successfully")

	return db, nil
}
