package models

import (
	"time"

	"github.com/google/uuid"
)

type Worker struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	DateOfExpiry *time.Time `json:"dateOfExpiry"`

	Position   *string `gorm:"size:255" json:"position"`
	Department *string `gorm:"size:255" json:"department"`
	Notes      *string `gorm:"type:text" json:"notes"`

	Certifications []Certification `gorm:"foreignkey:WorkerID" json:"certifications"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
