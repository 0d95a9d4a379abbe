package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles conversation-related HTTP requests
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	notificationRepository repositories.NotificationRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, notifRepo repositories.NotificationRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		notificationRepository: notifRepo,
	}
}

// SendMessage inserts one message row. The receiver and listing references
// are accepted as-is; the authoritative thread view is rebuilt from the
// store on read.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	senderID := getUserIDFromContext(c)
	if senderID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		ListingID:  req.ListingID,
		Content:    req.Content,
	}
	if err := h.messageRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Notify the receiver; an inbox failure never fails the send
	notification := &models.Notification{
		UserID:  req.ReceiverID,
		Type:    "message",
		Title:   "New message",
		Message: "You have a new message about one of your conversations.",
		Link:    "/messages",
	}
	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		log.Printf("Failed to create message notification: %v", err)
	}

	return c.JSON(http.StatusCreated, message)
}

// GetConversations returns the caller's threads, one entry per
// (partner, listing) pair with the latest message, newest first
func (h *MessageHandler) GetConversations(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	conversations, err := h.messageRepository.GetConversations(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, conversations)
}

// GetThread returns the full message history with one partner for one
// listing, oldest first
func (h *MessageHandler) GetThread(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	partnerParam := c.QueryParam("partner_id")
	listingParam := c.QueryParam("listing_id")
	if partnerParam == "" || listingParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "partner_id and listing_id are required")
	}

	partnerID, err := strconv.ParseUint(partnerParam, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid partner_id")
	}
	listingID, err := strconv.ParseUint(listingParam, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid listing_id")
	}

	thread, err := h.messageRepository.GetThread(userID, uint(partnerID), uint(listingID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, thread)
}
