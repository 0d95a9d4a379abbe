package repositories

import (
	"errors"

	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	CreateListing(listing *models.Listing, note *models.NoteMetadata) error
	GetListings(filters models.ListingFilters) ([]models.Listing, error)
	GetListingByID(id uint) (*models.Listing, error)
	UpdateStatus(id, sellerID uint, status string) (*models.Listing, error)
	DeleteListing(id uint) error
}

// PostgresListingRepository implements ListingRepository for PostgreSQL
type PostgresListingRepository struct {
	db *gorm.DB
}

// NewPostgresListingRepository creates a new PostgresListingRepository
func NewPostgresListingRepository(db *gorm.DB) *PostgresListingRepository {
	return &PostgresListingRepository{db: db}
}

// CreateListing inserts the listing and, for digital listings, its dependent
// note metadata row in one transaction. Pass note as nil for physical
// listings. Either insert failing rolls back both.
func (r *PostgresListingRepository) CreateListing(listing *models.Listing, note *models.NoteMetadata) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listing).Error; err != nil {
			return err
		}
		if note != nil {
			note.ListingID = listing.ID
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetListings returns active listings matching every supplied filter,
// newest first. Zero-valued filters impose no constraint.
func (r *PostgresListingRepository) GetListings(filters models.ListingFilters) ([]models.Listing, error) {
	query := r.db.Where("status = ?", models.StatusActive)

	if filters.CategoryID != 0 {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.Condition != "" {
		query = query.Where("condition = ?", filters.Condition)
	}
	if filters.MinPrice > 0 {
		query = query.Where("price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice > 0 {
		query = query.Where("price <= ?", filters.MaxPrice)
	}

	var listings []models.Listing
	err := query.Order("created_at DESC").Find(&listings).Error
	return listings, err
}

// GetListingByID retrieves a listing by ID
func (r *PostgresListingRepository) GetListingByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// UpdateStatus updates the listing status only when sellerID owns the row.
// The ownership check is the conditional update itself; zero rows affected
// means not found or not the owner, indistinguishable on purpose.
func (r *PostgresListingRepository) UpdateStatus(id, sellerID uint, status string) (*models.Listing, error) {
	res := r.db.Model(&models.Listing{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetListingByID(id)
}

// DeleteListing removes the listing and its dependent rows in one
// transaction: messages first, then note metadata, then the listing itself.
// Any failure rolls back all three deletes. Ownership is checked by the
// caller before this is invoked.
func (r *PostgresListingRepository) DeleteListing(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.NoteMetadata{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Listing{}, id).Error
	})
}
