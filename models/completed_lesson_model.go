package models

import (
	"time"

	"github.com/google/uuid"
)

type CompletedLesson struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"not null" json:"user_id"`
	CourseID      uuid.UUID `gorm:"not null" json:"course_id"`
	VariantItemID uuid.UUID `gorm:"not null" json:"variant_item_id"`

	VariantItem VariantItem `gorm:"foreignkey:VariantItemID" json:"variant_item"`

	CreatedAt time.Time `json:"created_at"`
}
