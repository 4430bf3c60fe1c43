package models

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;unique" json:"user_id"`
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	Bio      *string   `gorm:"size:200" json:"bio"`
	About    *string   `gorm:"type:text" json:"about"`
	Country  *string   `gorm:"size:100" json:"country"`
	ImageURL *string   `gorm:"size:255" json:"image_url"`
	Facebook *string   `gorm:"size:255" json:"facebook"`
	X        *string   `gorm:"size:255" json:"x"`
	LinkedIn *string   `gorm:"size:255" json:"linkedin"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
