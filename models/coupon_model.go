package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coupon is a teacher-scoped percentage discount. It only ever
// discounts order items whose course belongs to that teacher.
type Coupon struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID       `gorm:"not null" json:"teacher_id"`
	Code      string          `gorm:"size:50;not null;unique" json:"code"`
	Discount  decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount"`
	Active    bool            `gorm:"default:true" json:"active"`

	Teacher Teacher `gorm:"foreignkey:TeacherID" json:"-"`
	UsedBy  []*User `gorm:"many2many:coupon_used_by;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
