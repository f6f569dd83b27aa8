package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMasterCustomer_Validate(t *testing.T) {
	assert.NoError(t, (&MasterCustomer{CompanyName: "Spice Route"}).Validate())
	assert.EqualError(t, (&MasterCustomer{CompanyName: "   "}).Validate(), "company name is required")
	assert.Error(t, (&MasterCustomer{DID: -1, CompanyName: "Spice Route"}).Validate())
}

func TestMasterCustomer_IsNew(t *testing.T) {
	assert.True(t, (&MasterCustomer{}).IsNew())
	assert.False(t, (&MasterCustomer{DID: 7}).IsNew())
}

func TestLogoKeyFor(t *testing.T) {
	assert.Equal(t, "42.jpg", LogoKeyFor(42))
	assert.Equal(t, "1.jpg", LogoKeyFor(1))
}

func TestInstruction_Validate(t *testing.T) {
	assert.NoError(t, (&Instruction{CustomerID: 1, Instruction: "ring the bell"}).Validate())
	assert.EqualError(t, (&Instruction{Instruction: "x"}).Validate(), "customer ID is required")
	assert.EqualError(t, (&Instruction{CustomerID: 1, Instruction: " "}).Validate(), "instruction text is required")

	long := make([]byte, MaxInstructionLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.EqualError(t, (&Instruction{CustomerID: 1, Instruction: string(long)}).Validate(), "instruction text is too long")
}

func TestCustomerInfo_Validate(t *testing.T) {
	assert.NoError(t, (&CustomerInfo{CustomerID: 1, DeliveryCharge: decimal.NewFromFloat(2.5)}).Validate())
	assert.EqualError(t, (&CustomerInfo{}).Validate(), "customer ID is required")
	assert.EqualError(t,
		(&CustomerInfo{CustomerID: 1, DeliveryCharge: decimal.NewFromInt(-1)}).Validate(),
		"delivery charge cannot be negative",
	)
	assert.Contains(t, CustomerInfo{}.UpsertColumns(), "delivery_charge")
}
