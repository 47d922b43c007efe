// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	ContactEmail string    `gorm:"type:citext" json:"contact_email"`
	ContactPhone string    `gorm:"type:text" json:"contact_phone"`
	WebsiteURL   *string   `gorm:"type:text" json:"website_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Owner   User         `gorm:"foreignKey:OwnerID" json:"-"`
	Members []Membership `gorm:"foreignKey:OrganizationID" json:"-"`
}
