package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification statuses stored on the record. The expiring-soon
// classification is never stored, it is derived at query time.
const (
	CertStatusActive  = "active"
	CertStatusExpired = "expired"
	CertStatusOther   = "other"
)

type Certification struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkerID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"workerId"`
	CourseID          *uuid.UUID `gorm:"type:uuid;index" json:"courseId"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	CertificateNumber string     `gorm:"size:100;not null;unique" json:"certificateNumber"`
	IssuedDate        time.Time  `gorm:"not null" json:"issuedDate"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	Status            string     `gorm:"size:20;not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
