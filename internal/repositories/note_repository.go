package repositories

import (
	"errors"

	"github.com/campuskart/backend/internal/models"
	"gorm.io/gorm"
)

// PendingNote is a moderation queue entry: note metadata joined to the
// listing title and seller email.
type PendingNote struct {
	models.NoteMetadata
	Title       string `json:"title"`
	SellerEmail string `json:"seller_email"`
}

// NoteRepository defines the interface for the digital-note moderation queue
type NoteRepository interface {
	GetPending() ([]PendingNote, error)
	Approve(id uint) (*models.NoteMetadata, error)
}

// PostgresNoteRepository implements NoteRepository for PostgreSQL
type PostgresNoteRepository struct {
	db *gorm.DB
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository
func NewPostgresNoteRepository(db *gorm.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{db: db}
}

// GetPending returns unapproved note metadata joined with listing and seller
func (r *PostgresNoteRepository) GetPending() ([]PendingNote, error) {
	var notes []PendingNote
	err := r.db.Raw(`
		SELECT nm.id, nm.listing_id, nm.file_url, nm.is_approved,
		       l.title,
		       u.email AS seller_email
		FROM note_metadata nm
		JOIN listings l ON l.id = nm.listing_id
		JOIN users u ON u.id = l.seller_id
		WHERE nm.is_approved = false`).
		Scan(&notes).Error
	return notes, err
}

// Approve flips the moderation flag and returns the updated row
func (r *PostgresNoteRepository) Approve(id uint) (*models.NoteMetadata, error) {
	res := r.db.Model(&models.NoteMetadata{}).Where("id = ?", id).Update("is_approved", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var note models.NoteMetadata
	if err := r.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}
