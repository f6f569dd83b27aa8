package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(bcrypt.MinCost)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestHashPassword() {
	hash, err := s.service.HashPassword("Sup3rSecret!")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("Sup3rSecret!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	s.NoError(err)
	s.Equal(bcrypt.MinCost, cost)
}

func (s *PasswordServiceTestSuite) TestHashPassword_SaltedPerCall() {
	first, err := s.service.HashPassword("Sup3rSecret!")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("Sup3rSecret!")
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Empty() {
	_, err := s.service.HashPassword("")
	s.ErrorIs(err, ErrPasswordEmpty)
}

func (s *PasswordServiceTestSuite) TestHashPassword_TooLong() {
	_, err := s.service.HashPassword(strings.Repeat("a", MaxPasswordLength+1))
	s.ErrorIs(err, ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.service.HashPassword("Sup3rSecret!")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("Sup3rSecret!", hash))
	s.False(s.service.ComparePassword("sup3rsecret!", hash))
	s.False(s.service.ComparePassword("", hash))
	s.False(s.service.ComparePassword("Sup3rSecret!", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_InvalidCostUsesDefault() {
	service := NewPasswordService(0).(*PasswordService)
	s.Equal(DefaultBCryptCost, service.cost)

	service = NewPasswordService(bcrypt.MaxCost + 1).(*PasswordService)
	s.Equal(DefaultBCryptCost, service.cost)
}
