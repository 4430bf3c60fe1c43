package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a single line item inside an anonymous or user-bound cart
// session. At most one line exists per (cart_id, course_id).
type Cart struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CartID   string     `gorm:"size:100;not null;index:idx_cart_course,unique" json:"cart_id"`
	CourseID uuid.UUID  `gorm:"not null;index:idx_cart_course,unique" json:"course_id"`
	UserID   *uuid.UUID `json:"user_id"`

	Price   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	TaxFee  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_fee"`
	Total   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Country string          `gorm:"size:100;not null" json:"country"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
