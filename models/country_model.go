package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Country holds the tax-rate percentage applied to cart lines shipped
// to that country.
type Country struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string          `gorm:"size:100;not null;unique" json:"name"`
	TaxRate decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"tax_rate"`
	Active  bool            `gorm:"default:true" json:"active"`
}
