package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles cross-cutting moderation requests
type AdminHandler struct {
	userRepository         repositories.UserRepository
	noteRepository         repositories.NoteRepository
	listingRepository      repositories.ListingRepository
	notificationRepository repositories.NotificationRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userRepo repositories.UserRepository, noteRepo repositories.NoteRepository, listingRepo repositories.ListingRepository, notifRepo repositories.NotificationRepository) *AdminHandler {
	return &AdminHandler{
		userRepository:         userRepo,
		noteRepository:         noteRepo,
		listingRepository:      listingRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterAdminRoutes registers moderation routes; the group must already
// carry the JWT and admin middleware
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.POST("/users/:id/verify", h.VerifyUser)
	g.GET("/notes/pending", h.ListPendingNotes)
	g.POST("/notes/:id/approve", h.ApproveNote)
}

// ListUsers returns all users with their verification state, newest first
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.ListUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// VerifyUser flips a user's verified flag without an OTP check
// (administrative override)
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.userRepository.SetVerified(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notify(uint(id), "account_verified", "Account verified",
		"An administrator verified your account. You can now log in.", "/login")

	return c.JSON(http.StatusOK, echo.Map{"message": "User verified"})
}

// ListPendingNotes returns the digital-note moderation queue
func (h *AdminHandler) ListPendingNotes(c echo.Context) error {
	notes, err := h.noteRepository.GetPending()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, notes)
}

// ApproveNote flips a note's moderation flag and notifies the seller
func (h *AdminHandler) ApproveNote(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid note ID")
	}

	note, err := h.noteRepository.Approve(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Note not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if listing, err := h.listingRepository.GetListingByID(note.ListingID); err == nil {
		h.notify(listing.SellerID, "note_approved", "Notes approved",
			"Your notes listing was approved and is now visible to buyers.", "/listings/"+strconv.FormatUint(uint64(listing.ID), 10))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Note approved"})
}

// notify creates a notification as an isolated side effect; failures are
// logged, never returned
func (h *AdminHandler) notify(userID uint, notifType, title, message, link string) {
	n := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := h.notificationRepository.CreateNotification(n); err != nil {
		log.Printf("Failed to create %s notification: %v", notifType, err)
	}
}
