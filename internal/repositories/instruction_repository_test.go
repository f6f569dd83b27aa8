package repositories

import (
	"context"
	"testing"
	"time"

	"restaurant-admin/internal/database"
	"restaurant-admin/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

func TestInstructionRepository(t *testing.T) {
	suite.Run(t, new(InstructionRepositorySuite))
}

type InstructionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     InstructionRepositoryInterface
	customer *models.MasterCustomer
	ctx      context.Context
}

func (s *InstructionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInstructionRepository(s.db.DB)
	s.customer = database.CreateTestCustomer(s.T(), s.db, "Spice Route", "Pune")
	s.ctx = context.Background()
}

func (s *InstructionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *InstructionRepositorySuite) TestCreate() {
	instruction := &models.Instruction{
		CustomerID:  s.customer.DID,
		Instruction: gofakeit.Sentence(8),
		CreatedBy:   "operator",
	}

	s.NoError(s.repo.Create(s.ctx, instruction))
	s.NotZero(instruction.ID)
	s.NotZero(instruction.CreatedAt)
}

func (s *InstructionRepositorySuite) TestCreate_Invalid() {
	s.Error(s.repo.Create(s.ctx, &models.Instruction{CustomerID: s.customer.DID}))
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *InstructionRepositorySuite) TestListByCustomer_OrderedOldestFirst() {
	base := time.Now().Add(-time.Hour)
	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		s.NoError(s.repo.Create(s.ctx, &models.Instruction{
			CustomerID:  s.customer.DID,
			Instruction: text,
			CreatedAt:   base.Add(time.Duration(2-i) * -time.Minute),
		}))
	}

	other := database.CreateTestCustomer(s.T(), s.db, "Burger Barn", "Delhi")
	s.NoError(s.repo.Create(s.ctx, &models.Instruction{CustomerID: other.DID, Instruction: "not mine"}))

	instructions, err := s.repo.ListByCustomer(s.ctx, s.customer.DID)
	s.NoError(err)
	s.Len(instructions, 3)
	for i, text := range texts {
		s.Equal(text, instructions[i].Instruction)
	}
}

func (s *InstructionRepositorySuite) TestListByCustomer_None() {
	instructions, err := s.repo.ListByCustomer(s.ctx, s.customer.DID)
	s.NoError(err)
	s.Empty(instructions)
}
