package repositories

import (
	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetConversations(userID uint) ([]models.Conversation, error)
	GetThread(userID, partnerID, listingID uint) ([]models.ThreadMessage, error)
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// CreateMessage inserts one message row as-is
func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetConversations returns one entry per distinct (partner, listing) pair
// involving the user: the most recent message of that thread plus partner
// and listing display info, ordered by that message's timestamp descending.
// The latest message per thread is selected via MAX(id), which tracks
// insertion order.
func (r *PostgresMessageRepository) GetConversations(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.Raw(`
		SELECT m.id, m.sender_id, m.receiver_id, m.listing_id, m.content, m.created_at,
		       CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS partner_id,
		       u.name AS partner_name,
		       u.email AS partner_email,
		       l.title AS listing_title,
		       l.price AS listing_price
		FROM messages m
		JOIN users u ON u.id = CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
		JOIN listings l ON l.id = m.listing_id
		WHERE m.id IN (
			SELECT MAX(m2.id)
			FROM messages m2
			WHERE m2.sender_id = ? OR m2.receiver_id = ?
			GROUP BY m2.listing_id,
			         CASE WHEN m2.sender_id = ? THEN m2.receiver_id ELSE m2.sender_id END
		)
		ORDER BY m.created_at DESC`,
		userID, userID, userID, userID, userID).
		Scan(&conversations).Error
	return conversations, err
}

// GetThread returns the full message history between two users scoped to one
// listing, oldest first, each row enriched with the sender's display info.
func (r *PostgresMessageRepository) GetThread(userID, partnerID, listingID uint) ([]models.ThreadMessage, error) {
	var thread []models.ThreadMessage
	err := r.db.Raw(`
		SELECT m.id, m.sender_id, m.receiver_id, m.listing_id, m.content, m.created_at,
		       s.name AS sender_name,
		       s.email AS sender_email
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		WHERE m.listing_id = ?
		  AND ((m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?))
		ORDER BY m.created_at ASC`,
		listingID, userID, partnerID, partnerID, userID).
		Scan(&thread).Error
	return thread, err
}
