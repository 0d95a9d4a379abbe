package repositories

import (
	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category reference data
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetAll returns all categories ordered by name
func (r *PostgresCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// Create inserts a new category
func (r *PostgresCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
