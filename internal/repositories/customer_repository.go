package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-admin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNilCustomer      = errors.New("customer cannot be nil")
)

// CustomerRepository handles database operations for master customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Store creates or updates a customer and associates its logo in one transaction.
// If attach or the commit fails the row change is rolled back and a logo that
// no surviving row refers to is discarded.
func (r *CustomerRepository) Store(ctx context.Context, customer *models.MasterCustomer, attach LogoAttacher) (bool, error) {
	if customer == nil {
		return false, ErrNilCustomer
	}

	created := customer.IsNew()
	var discard func()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existingLogo string
		if created {
			customer.LogoKey = ""
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}
		} else {
			var existing models.MasterCustomer
			if err := tx.Select("did", "created_at", "logo_key").
				Where("did = ?", customer.DID).
				First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCustomerNotFound
				}
				return fmt.Errorf("failed to load customer %d: %w", customer.DID, err)
			}

			existingLogo = existing.LogoKey
			customer.CreatedAt = existing.CreatedAt
			customer.LogoKey = existing.LogoKey
			customer.UpdatedAt = time.Now()

			if err := tx.Save(customer).Error; err != nil {
				return fmt.Errorf("failed to update customer %d: %w", customer.DID, err)
			}
		}

		if attach == nil {
			return nil
		}

		key, undo, err := attach(ctx, customer.DID)
		if err != nil {
			return err
		}
		// an existing row keeps pointing at a replaced logo, so only a new file is undone
		if created || existingLogo == "" {
			discard = undo
		}

		customer.LogoKey = key
		if err := tx.Model(customer).Update("logo_key", key).Error; err != nil {
			return fmt.Errorf("failed to record logo for customer %d: %w", customer.DID, err)
		}

		return nil
	})

	if err != nil {
		if discard != nil {
			discard()
		}
		if created {
			customer.DID = 0
			customer.LogoKey = ""
		}
		return false, err
	}

	return created, nil
}

// GetByDID retrieves a customer by its identifier
func (r *CustomerRepository) GetByDID(ctx context.Context, did int64) (*models.MasterCustomer, error) {
	var customer models.MasterCustomer
	if err := r.db.WithContext(ctx).Where("did = ?", did).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by DID: %w", err)
	}

	return &customer, nil
}

// Exists reports whether a customer with the given DID is stored
func (r *CustomerRepository) Exists(ctx context.Context, did int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MasterCustomer{}).
		Where("did = ?", did).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return count > 0, nil
}

// Search returns one page of customers matching the criteria and the total match count
func (r *CustomerRepository) Search(ctx context.Context, criteria CustomerSearchCriteria, offset, limit int) ([]*models.MasterCustomer, int64, error) {
	var customers []*models.MasterCustomer
	var total int64

	baseQuery := r.db.WithContext(ctx).Model(&models.MasterCustomer{})

	if term := strings.TrimSpace(criteria.Query); term != "" {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(company_name) LIKE ? ESCAPE '\\' OR LOWER(contact_person) LIKE ? ESCAPE '\\' OR LOWER(city) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	if total == 0 {
		return []*models.MasterCustomer{}, 0, nil
	}

	if err := baseQuery.Order("company_name ASC, did ASC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
