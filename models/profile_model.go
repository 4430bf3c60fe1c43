package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is created together with its User in the same transaction;
// every account has exactly one.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;unique" json:"user_id"`
	FullName string    `gorm:"size:100" json:"full_name"`
	ImageURL *string   `gorm:"size:255" json:"image_url"`
	Country  *string   `gorm:"size:100" json:"country"`
	About    *string   `gorm:"type:text" json:"about"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
