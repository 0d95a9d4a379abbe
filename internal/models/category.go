package models

// Listing and category types
const (
	TypePhysical = "PHYSICAL"
	TypeDigital  = "DIGITAL"
)

// Category is static reference data partitioning the marketplace
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex"`
	Type string `json:"type" gorm:"size:20"` // PHYSICAL or DIGITAL
}

// CreateCategoryRequest defines the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
	Type string `json:"type" validate:"required,oneof=PHYSICAL DIGITAL"`
}
