package models

import "time"

// Message is immutable once created. A conversation thread is identified by
// the unordered pair {sender, receiver} plus the listing.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index"`
	ReceiverID uint      `json:"receiver_id" gorm:"index"`
	ListingID  uint      `json:"listing_id" gorm:"index"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// SendMessageRequest defines the request body for sending a message
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" validate:"required"`
	ListingID  uint   `json:"listing_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

// Conversation is one thread summary: the latest message between the user
// and a partner for one listing, plus display info for both.
type Conversation struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"sender_id"`
	ReceiverID   uint      `json:"receiver_id"`
	ListingID    uint      `json:"listing_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	PartnerID    uint      `json:"partner_id"`
	PartnerName  string    `json:"partner_name"`
	PartnerEmail string    `json:"partner_email"`
	ListingTitle string    `json:"listing_title"`
	ListingPrice float64   `json:"listing_price"`
}

// ThreadMessage is a message enriched with sender display info
type ThreadMessage struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	ReceiverID  uint      `json:"receiver_id"`
	ListingID   uint      `json:"listing_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
}
