package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"`
	DurationHours *int      `json:"durationHours"`
	IsActive      bool      `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
