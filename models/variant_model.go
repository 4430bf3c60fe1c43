package models

import (
	"time"

	"github.com/google/uuid"
)

// Variant is one section of a course curriculum.
type Variant struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"not null" json:"course_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`

	Items []VariantItem `json:"items,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// VariantItem is a single lecture inside a Variant.
type VariantItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	VariantID     uuid.UUID `gorm:"not null" json:"variant_id"`
	VariantItemID string    `gorm:"size:20;unique;not null" json:"variant_item_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   *string   `gorm:"type:text" json:"description"`
	FileURL       *string   `gorm:"size:255" json:"file_url"`
	Preview       bool      `gorm:"default:false" json:"preview"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
