package repositories

import (
	"context"
	"testing"

	"restaurant-admin/internal/database"
	"restaurant-admin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCustomerInfoRepository(t *testing.T) {
	suite.Run(t, new(CustomerInfoRepositorySuite))
}

type CustomerInfoRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     CustomerInfoRepositoryInterface
	customer *models.MasterCustomer
	ctx      context.Context
}

func (s *CustomerInfoRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerInfoRepository(s.db.DB)
	s.customer = database.CreateTestCustomer(s.T(), s.db, "Spice Route", "Pune")
	s.ctx = context.Background()
}

func (s *CustomerInfoRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CustomerInfoRepositorySuite) TestUpsert_InsertThenOverwrite() {
	s.NoError(s.repo.Upsert(s.ctx, &models.CustomerInfo{
		CustomerID:     s.customer.DID,
		Website:        "https://spice.example",
		DeliveryCharge: decimal.RequireFromString("30.00"),
	}))

	s.NoError(s.repo.Upsert(s.ctx, &models.CustomerInfo{
		CustomerID:     s.customer.DID,
		Website:        "https://spiceroute.example",
		OpeningHours:   "11:00-23:00",
		DeliveryCharge: decimal.RequireFromString("45.50"),
	}))

	var count int64
	s.NoError(s.db.Model(&models.CustomerInfo{}).Where("customer_id = ?", s.customer.DID).Count(&count).Error)
	s.Equal(int64(1), count)

	info, err := s.repo.GetByCustomer(s.ctx, s.customer.DID)
	s.NoError(err)
	s.Equal("https://spiceroute.example", info.Website)
	s.Equal("11:00-23:00", info.OpeningHours)
	s.True(decimal.RequireFromString("45.50").Equal(info.DeliveryCharge))
}

func (s *CustomerInfoRepositorySuite) TestUpsert_Invalid() {
	s.Error(s.repo.Upsert(s.ctx, &models.CustomerInfo{}))
	s.Error(s.repo.Upsert(s.ctx, nil))
}

func (s *CustomerInfoRepositorySuite) TestGetByCustomer_NotFound() {
	_, err := s.repo.GetByCustomer(s.ctx, s.customer.DID)
	s.Equal(ErrCustomerInfoNotFound, err)
}
