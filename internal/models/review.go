package models

import "time"

// Review is a post-transaction rating left by one user on another, scoped to
// a listing. Self-review is rejected; duplicates are accepted as-is.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReviewerID uint      `json:"reviewer_id" gorm:"index"`
	TargetID   uint      `json:"target_id" gorm:"index"`
	ListingID  uint      `json:"listing_id" gorm:"index"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest defines the request body for posting a review
type CreateReviewRequest struct {
	TargetID  uint   `json:"target_id" validate:"required"`
	ListingID uint   `json:"listing_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
}

// ReviewWithReviewer is a review joined with the reviewer's display name
type ReviewWithReviewer struct {
	Review
	ReviewerName string `json:"reviewer_name"`
}

// UserRating is the aggregate computed per target on read, never stored
type UserRating struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}
