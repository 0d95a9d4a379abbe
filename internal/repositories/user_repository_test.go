package repositories

import (
	"testing"
	"time"

	"github.com/campuskart/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_RegisterUser(t *testing.T) {
	t.Run("creates user and OTP together", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "student@thapar.edu", Name: "Student", Password: "hash", Role: models.RoleStudent}
		otp := &models.OTPCode{Email: "student@thapar.edu", Code: "123456", ExpiresAt: time.Now().Add(10 * time.Minute)}

		err := repo.RegisterUser(user, otp)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.IsVerified, "users start unverified")

		var otpCount int64
		db.Model(&models.OTPCode{}).Where("email = ?", user.Email).Count(&otpCount)
		assert.EqualValues(t, 1, otpCount)
	})

	t.Run("duplicate email leaves no extra rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		first := &models.User{Email: "dup@thapar.edu", Name: "First", Password: "hash"}
		require.NoError(t, repo.RegisterUser(first, &models.OTPCode{Email: first.Email, Code: "111111", ExpiresAt: time.Now().Add(10 * time.Minute)}))

		second := &models.User{Email: "dup@thapar.edu", Name: "Second", Password: "hash"}
		err := repo.RegisterUser(second, &models.OTPCode{Email: second.Email, Code: "222222", ExpiresAt: time.Now().Add(10 * time.Minute)})

		assert.ErrorIs(t, err, ErrEmailTaken)

		var userCount, otpCount int64
		db.Model(&models.User{}).Where("email = ?", "dup@thapar.edu").Count(&userCount)
		db.Model(&models.OTPCode{}).Where("email = ?", "dup@thapar.edu").Count(&otpCount)
		assert.EqualValues(t, 1, userCount)
		assert.EqualValues(t, 1, otpCount, "the rejected registration must not add an OTP")
	})
}

func TestUserRepository_VerifyOTP(t *testing.T) {
	t.Run("matching unexpired code verifies and consumes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "student@thapar.edu", Name: "Student", Password: "hash"}
		otp := &models.OTPCode{Email: user.Email, Code: "654321", ExpiresAt: time.Now().Add(10 * time.Minute)}
		require.NoError(t, repo.RegisterUser(user, otp))

		err := repo.VerifyOTP(user.Email, "654321")

		require.NoError(t, err)
		verified, getErr := repo.GetUserByEmail(user.Email)
		require.NoError(t, getErr)
		assert.True(t, verified.IsVerified)

		var otpCount int64
		db.Model(&models.OTPCode{}).Where("email = ?", user.Email).Count(&otpCount)
		assert.Zero(t, otpCount, "used OTP rows must be deleted")
	})

	t.Run("wrong code fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "student@thapar.edu", Name: "Student", Password: "hash"}
		require.NoError(t, repo.RegisterUser(user, &models.OTPCode{Email: user.Email, Code: "654321", ExpiresAt: time.Now().Add(10 * time.Minute)}))

		err := repo.VerifyOTP(user.Email, "000000")

		assert.ErrorIs(t, err, ErrInvalidOTP)
		unverified, getErr := repo.GetUserByEmail(user.Email)
		require.NoError(t, getErr)
		assert.False(t, unverified.IsVerified)
	})

	t.Run("correct but expired code fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "student@thapar.edu", Name: "Student", Password: "hash"}
		require.NoError(t, repo.RegisterUser(user, &models.OTPCode{Email: user.Email, Code: "654321", ExpiresAt: time.Now().Add(-1 * time.Minute)}))

		err := repo.VerifyOTP(user.Email, "654321")

		assert.ErrorIs(t, err, ErrInvalidOTP)
	})
}

func TestUserRepository_SetVerified(t *testing.T) {
	t.Run("admin override flips the flag", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "student@thapar.edu", Name: "Student", Password: "hash"}
		require.NoError(t, db.Create(user).Error)

		require.NoError(t, repo.SetVerified(user.ID))

		verified, err := repo.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.True(t, verified.IsVerified)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostgresUserRepository(db)

		assert.ErrorIs(t, repo.SetVerified(42), ErrNotFound)
	})
}
