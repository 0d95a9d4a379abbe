package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ListingHandler handles listing-related HTTP requests
type ListingHandler struct {
	listingRepository repositories.ListingRepository
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingRepo repositories.ListingRepository) *ListingHandler {
	return &ListingHandler{listingRepository: listingRepo}
}

// CreateListing creates a listing owned by the authenticated user. Digital
// listings get a dependent note metadata row in the same transaction.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	sellerID := getUserIDFromContext(c)
	if sellerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	condition := req.Condition
	if condition == "" {
		condition = "USED"
	}

	listing := &models.Listing{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Status:      models.StatusActive,
		Condition:   condition,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		Attributes:  req.Attributes,
	}

	var note *models.NoteMetadata
	if req.Type == models.TypeDigital {
		note = &models.NoteMetadata{FileURL: req.NotesURL, IsApproved: false}
	}

	if err := h.listingRepository.CreateListing(listing, note); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, listing)
}

// GetListings returns active listings matching the query filters
func (h *ListingHandler) GetListings(c echo.Context) error {
	var filters models.ListingFilters

	if v := c.QueryParam("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid category_id")
		}
		filters.CategoryID = uint(id)
	}
	filters.Condition = c.QueryParam("condition")
	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid min_price")
		}
		filters.MinPrice = p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid max_price")
		}
		filters.MaxPrice = p
	}

	listings, err := h.listingRepository.GetListings(filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

// GetListing returns a single listing by ID
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid listing ID")
	}

	listing, err := h.listingRepository.GetListingByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing)
}

// UpdateStatus toggles ACTIVE/SOLD, only for the owning seller. Ownership is
// enforced by the conditional update: a zero-row result is reported as not
// found without distinguishing a missing row from someone else's.
func (h *ListingHandler) UpdateStatus(c echo.Context) error {
	sellerID := getUserIDFromContext(c)
	if sellerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid listing ID")
	}

	var req models.UpdateListingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingRepository.UpdateStatus(uint(id), sellerID, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found or unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing)
}

// DeleteListing removes a listing with its messages and note metadata.
// Permitted for the owning seller or an admin.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid listing ID")
	}

	listing, err := h.listingRepository.GetListingByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if listing.SellerID != claims.UserID && claims.Role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this listing")
	}

	if err := h.listingRepository.DeleteListing(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Listing deleted successfully"})
}
