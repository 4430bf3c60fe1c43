package models

import (
	"github.com/google/uuid"
)

type Category struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title  string    `gorm:"size:100;not null;unique" json:"title"`
	Slug   string    `gorm:"size:100;unique" json:"slug"`
	Active bool      `gorm:"default:true" json:"active"`
}
