package models

import (
	"time"

	"github.com/google/uuid"
)

type WishList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;index:idx_wishlist_user_course,unique" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null;index:idx_wishlist_user_course,unique" json:"course_id"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
}
