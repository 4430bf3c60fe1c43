package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionAnswer is a Q&A thread on a course.
type QuestionAnswer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QAID     string    `gorm:"column:qa_id;size:20;unique;not null" json:"qa_id"`
	CourseID uuid.UUID `gorm:"not null" json:"course_id"`
	UserID   uuid.UUID `gorm:"not null" json:"user_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`

	User     User                    `gorm:"foreignkey:UserID" json:"user"`
	Messages []QuestionAnswerMessage `gorm:"foreignkey:QuestionID" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type QuestionAnswerMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"not null" json:"question_id"`
	CourseID   uuid.UUID `gorm:"not null" json:"course_id"`
	UserID     uuid.UUID `gorm:"not null" json:"user_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
}
