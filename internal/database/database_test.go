package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdminUser_CreatesOnce(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()

	first, err := db.SeedAdminUser(ctx, "operator", "correct-horse", "Operator", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first.PasswordHash), []byte("correct-horse")))

	second, err := db.SeedAdminUser(ctx, "OPERATOR", "other-password", "Someone", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Table("admin_users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.CreateIndexes(), "index creation must be repeatable")
}

func TestPing(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestCreateTestCustomer(t *testing.T) {
	db := SetupTestDB(t)

	customer := CreateTestCustomer(t, db, "Spice Route", "Pune")
	assert.NotZero(t, customer.DID)
}
