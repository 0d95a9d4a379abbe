package handlers

import (
	"net/http"
	"strconv"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewRepository repositories.ReviewRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewRepo repositories.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepository: reviewRepo}
}

// CreateReview posts a rating on another user, scoped to a listing
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	reviewerID := getUserIDFromContext(c)
	if reviewerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if reviewerID == req.TargetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot review yourself")
	}

	review := &models.Review{
		ReviewerID: reviewerID,
		TargetID:   req.TargetID,
		ListingID:  req.ListingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := h.reviewRepository.CreateReview(review); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, review)
}

// GetUserReviews returns a user's reviews plus their computed rating, public
func (h *ReviewHandler) GetUserReviews(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	reviews, err := h.reviewRepository.GetForUser(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	rating, err := h.reviewRepository.GetUserRating(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reviews": reviews,
		"rating":  rating,
	})
}
