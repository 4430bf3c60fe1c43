package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationNewOrder            = "New Order"
	NotificationEnrollmentCompleted = "Course Enrollment Completed"
	NotificationNewReview           = "New Review"
	NotificationNewQuestion         = "New Question"
)

// Notification is a durable in-app notification row. Delivery (email,
// push) is out of scope; consumers poll their list and mark rows seen.
type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      *uuid.UUID `json:"user_id"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	OrderID     *uuid.UUID `json:"order_id"`
	OrderItemID *uuid.UUID `json:"order_item_id"`
	Type        string     `gorm:"size:100;not null" json:"type"`
	Seen        bool       `gorm:"default:false" json:"seen"`

	Order     *CartOrder     `gorm:"foreignkey:OrderID" json:"order,omitempty"`
	OrderItem *CartOrderItem `gorm:"foreignkey:OrderItemID" json:"order_item,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
