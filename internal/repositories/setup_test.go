package repositories

import (
	"testing"

	"github.com/campuskart/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.Category{},
		&models.Listing{},
		&models.NoteMetadata{},
		&models.Message{},
		&models.Notification{},
		&models.Review{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createTestUser inserts a user and returns it
func createTestUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()

	user := &models.User{
		Email:      email,
		Name:       name,
		Password:   "hashed_password",
		Role:       models.RoleStudent,
		IsVerified: true,
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}
