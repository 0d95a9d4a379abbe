package repositories

import (
	"errors"
	"time"

	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user and OTP operations
type UserRepository interface {
	RegisterUser(user *models.User, otp *models.OTPCode) error
	VerifyOTP(email, code string) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	SetVerified(id uint) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// RegisterUser inserts the unverified user and their OTP code in one
// transaction; either both rows exist afterwards or neither does.
func (r *PostgresUserRepository) RegisterUser(user *models.User, otp *models.OTPCode) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", user.Email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

// VerifyOTP succeeds iff a row matches email+code with expires_at in the
// future; on success the user is flipped to verified and the used OTP rows
// are deleted.
func (r *PostgresUserRepository) VerifyOTP(email, code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var otp models.OTPCode
		err := tx.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
			First(&otp).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidOTP
			}
			return err
		}
		if err := tx.Model(&models.User{}).Where("email = ?", email).
			Update("is_verified", true).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", email).Delete(&models.OTPCode{}).Error
	})
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users, newest first
func (r *PostgresUserRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// SetVerified unconditionally flips the verified flag (admin override)
func (r *PostgresUserRepository) SetVerified(id uint) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
