package repositories

import (
	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	CreateReview(review *models.Review) error
	GetForUser(targetID uint) ([]models.ReviewWithReviewer, error)
	GetUserRating(targetID uint) (*models.UserRating, error)
}

// PostgresReviewRepository implements ReviewRepository for PostgreSQL
type PostgresReviewRepository struct {
	db *gorm.DB
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository
func NewPostgresReviewRepository(db *gorm.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

// CreateReview inserts a review unconditionally. Self-review is rejected at
// the handler; duplicate reviews for the same listing are accepted.
func (r *PostgresReviewRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetForUser returns reviews of the target joined with the reviewer's
// display name, newest first
func (r *PostgresReviewRepository) GetForUser(targetID uint) ([]models.ReviewWithReviewer, error) {
	var reviews []models.ReviewWithReviewer
	err := r.db.Raw(`
		SELECT r.id, r.reviewer_id, r.target_id, r.listing_id, r.rating, r.comment, r.created_at,
		       u.name AS reviewer_name
		FROM reviews r
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.target_id = ?
		ORDER BY r.created_at DESC`,
		targetID).
		Scan(&reviews).Error
	return reviews, err
}

// GetUserRating computes the target's average rating and review count on
// read. Zero reviews yields an average of 0.
func (r *PostgresReviewRepository) GetUserRating(targetID uint) (*models.UserRating, error) {
	var rating models.UserRating
	err := r.db.Raw(`
		SELECT COALESCE(AVG(rating), 0) AS average_rating,
		       COUNT(*) AS total_reviews
		FROM reviews
		WHERE target_id = ?`,
		targetID).
		Scan(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
