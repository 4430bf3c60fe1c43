package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusProcessing = "Processing"
	PaymentStatusPaid       = "Paid"
	PaymentStatusFailed     = "Failed"
)

// CartOrder is an immutable order created from the lines of one cart
// session. Its totals change only through coupon application; its
// payment status only through payment confirmation.
type CartOrder struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OID       string     `gorm:"column:oid;size:20;unique;not null" json:"oid"`
	FullName  string     `gorm:"size:100;not null" json:"full_name"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Country   string     `gorm:"size:100;not null" json:"country"`
	StudentID *uuid.UUID `json:"student_id"`

	SubTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"sub_total"`
	TaxFee       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"tax_fee"`
	InitialTotal decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"initial_total"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total"`
	Saved        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"saved"`

	PaymentStatus   string  `gorm:"size:20;not null;default:'Processing'" json:"payment_status"`
	StripeSessionID *string `gorm:"size:255" json:"-"`

	Student *User           `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Items   []CartOrderItem `gorm:"foreignkey:OrderID" json:"items,omitempty"`
	Coupons []*Coupon       `gorm:"many2many:cart_order_coupons;" json:"coupons,omitempty"`
	Teachers []*Teacher     `gorm:"many2many:cart_order_teachers;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
