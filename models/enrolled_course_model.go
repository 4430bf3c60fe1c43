package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrolledCourse grants a student access to a course. Exactly one row
// exists per (user, order item); rows are only created by payment
// confirmation.
type EnrolledCourse struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EnrollmentID string    `gorm:"size:20;unique;not null" json:"enrollment_id"`
	CourseID     uuid.UUID `gorm:"not null" json:"course_id"`
	UserID       uuid.UUID `gorm:"not null" json:"user_id"`
	TeacherID    uuid.UUID `gorm:"not null" json:"teacher_id"`
	OrderItemID  uuid.UUID `gorm:"not null;unique" json:"order_item_id"`

	Course    Course        `gorm:"foreignkey:CourseID" json:"course"`
	OrderItem CartOrderItem `gorm:"foreignkey:OrderItemID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
