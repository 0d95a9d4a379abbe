package models

import "gorm.io/gorm"

// Listing status values gating visibility in search results
const (
	StatusActive = "ACTIVE"
	StatusSold   = "SOLD"
)

// Listing is a marketplace item put up by a seller. Digital listings carry a
// dependent NoteMetadata row created in the same transaction.
type Listing struct {
	gorm.Model `json:"-"`
	ID         uint              `json:"id" gorm:"primaryKey"`
	SellerID   uint              `json:"seller_id" gorm:"index"`
	Title      string            `json:"title"`
	Description string           `json:"description"`
	Price      float64           `json:"price"`
	Type       string            `json:"type" gorm:"size:20"` // PHYSICAL or DIGITAL
	CategoryID uint              `json:"category_id" gorm:"index"`
	Status     string            `json:"status" gorm:"size:20;default:ACTIVE;index"`
	Condition  string            `json:"condition" gorm:"size:20;default:USED"`
	ImageURL   string            `json:"image_url"`
	Tags       []string          `json:"tags" gorm:"serializer:json"`
	Attributes map[string]string `json:"attributes" gorm:"serializer:json"`
}

// NoteMetadata is the moderation and file-reference record attached to a
// digital-type listing (1:1).
type NoteMetadata struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ListingID  uint   `json:"listing_id" gorm:"uniqueIndex"`
	FileURL    string `json:"file_url"`
	IsApproved bool   `json:"is_approved" gorm:"default:false;index"`
}

// TableName overrides GORM's pluralization, which mangles "metadata"
func (NoteMetadata) TableName() string {
	return "note_metadata"
}

// CreateListingRequest defines the request body for creating a listing
type CreateListingRequest struct {
	Title       string            `json:"title" validate:"required,min=3,max=100"`
	Description string            `json:"description" validate:"max=2000"`
	Price       float64           `json:"price" validate:"required,gt=0"`
	Type        string            `json:"type" validate:"required,oneof=PHYSICAL DIGITAL"`
	CategoryID  uint              `json:"category_id" validate:"required"`
	Condition   string            `json:"condition" validate:"omitempty,oneof=NEW LIKE_NEW USED"`
	ImageURL    string            `json:"image_url"`
	NotesURL    string            `json:"notes_url"` // File reference for DIGITAL listings
	Tags        []string          `json:"tags"`
	Attributes  map[string]string `json:"attributes"`
}

// UpdateListingStatusRequest defines the request body for toggling status
type UpdateListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE SOLD"`
}

// ListingFilters are the optional search predicates, AND-combined.
// Zero values impose no constraint.
type ListingFilters struct {
	CategoryID uint
	Condition  string
	MinPrice   float64
	MaxPrice   float64
}
