package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NoteID   string    `gorm:"size:20;unique;not null" json:"note_id"`
	UserID   uuid.UUID `gorm:"not null" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null" json:"course_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Note     string    `gorm:"type:text;not null" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
