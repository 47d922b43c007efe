// internal/model/customer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the countable tenant resource. Every row belongs to exactly one
// organization and counts toward that organization's customer quota.
type Customer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:citext" json:"email"`
	Phone          string    `gorm:"type:text" json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
