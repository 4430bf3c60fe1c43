package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CourseLevelBeginner     = "Beginner"
	CourseLevelIntermediate = "Intermediate"
	CourseLevelAdvanced     = "Advanced"

	CourseStatusDraft     = "Draft"
	CourseStatusDisabled  = "Disabled"
	CourseStatusReview    = "Review"
	CourseStatusPublished = "Published"
)

type Course struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	TeacherID   uuid.UUID       `gorm:"not null" json:"teacher_id"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Description *string         `gorm:"type:text" json:"description"`
	ImageURL    *string         `gorm:"size:255" json:"image_url"`
	FileURL     *string         `gorm:"size:255" json:"file_url"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Language    string          `gorm:"size:100;not null;default:'English'" json:"language"`
	Level       string          `gorm:"size:100;not null;default:'Beginner'" json:"level"`

	// PlatformStatus is moderated by the platform, TeacherCourseStatus by
	// the course owner. A course is visible only when both are Published.
	PlatformStatus      string `gorm:"size:100;not null;default:'Published'" json:"platform_status"`
	TeacherCourseStatus string `gorm:"size:100;not null;default:'Published'" json:"teacher_course_status"`

	Featured bool   `gorm:"default:false" json:"featured"`
	CourseID string `gorm:"size:20;unique;not null" json:"course_id"`
	Slug     string `gorm:"size:255;unique;not null" json:"slug"`

	Category *Category `gorm:"foreignkey:CategoryID" json:"category,omitempty"`
	Teacher  Teacher   `gorm:"foreignkey:TeacherID" json:"teacher"`
	Variants []Variant `json:"curriculum,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
