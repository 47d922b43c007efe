// internal/model/plan.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanName is a subscription tier. Hierarchy comparisons live in the authz
// package.
type PlanName string

const (
	PlanFree    PlanName = "free"
	PlanBasic   PlanName = "basic"
	PlanPremium PlanName = "premium"
)

// Plan is immutable reference data seeded at migration time.
type Plan struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         PlanName  `gorm:"type:text;uniqueIndex;not null" json:"name"`
	MaxMembers   int       `gorm:"not null" json:"max_members"`
	MaxCustomers int       `gorm:"not null" json:"max_customers"`
	// MaxOrgs caps how many organizations a single owner may hold on this plan.
	MaxOrgs   int       `gorm:"column:max_organizations;not null" json:"max_organizations"`
	CreatedAt time.Time `json:"created_at"`
}
