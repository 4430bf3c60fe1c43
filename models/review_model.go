package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is one rating per (user, course).
type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;index:idx_review_user_course,unique" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null;index:idx_review_user_course,unique" json:"course_id"`
	Rating   int       `gorm:"not null" json:"rating"`
	Review   string    `gorm:"type:text" json:"review"`
	Reply    *string   `gorm:"type:text" json:"reply"`
	Active   bool      `gorm:"default:true" json:"active"`

	User   User   `gorm:"foreignkey:UserID" json:"user"`
	Course Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
