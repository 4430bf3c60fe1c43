package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartOrderItem records one purchased course within an order.
// InitialTotal keeps the price at order-creation time; Price, Total and
// Saved move when a coupon is applied.
type CartOrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OID      string    `gorm:"column:oid;size:20;unique;not null" json:"oid"`
	OrderID  uuid.UUID `gorm:"not null" json:"order_id"`
	CourseID uuid.UUID `gorm:"not null" json:"course_id"`
	TeacherID uuid.UUID `gorm:"not null" json:"teacher_id"`

	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	TaxFee        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_fee"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	InitialTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"initial_total"`
	Saved         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"saved"`
	AppliedCoupon bool            `gorm:"default:false" json:"applied_coupon"`

	Course  Course    `gorm:"foreignkey:CourseID" json:"course"`
	Teacher Teacher   `gorm:"foreignkey:TeacherID" json:"teacher"`
	Coupons []*Coupon `gorm:"many2many:cart_order_item_coupons;" json:"coupons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
