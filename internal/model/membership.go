// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is a membership's permission tier within one organization. Hierarchy
// comparisons live in the authz package; the model only carries the value.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

// Membership links an identity to an organization with a role. At most one
// membership exists per (organization, user) pair, enforced by a unique index.
type Membership struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_membership_org_user,priority:1" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_membership_org_user,priority:2" json:"user_id"`
	Role           Role      `gorm:"type:text;not null;default:'member'" json:"role"`

	// Denormalized for display so member lists avoid joining users/orgs.
	UserEmail string `gorm:"type:citext;not null" json:"user_email"`
	OrgName   string `gorm:"type:text;not null" json:"org_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}

// MembershipContext is the flat projection returned by the gate's joined
// membership -> organization -> current subscription -> plan query. The
// nested optionality of the join collapses into HasSubscription plus
// plain fields, so call sites never chase nils.
type MembershipContext struct {
	MembershipID   uuid.UUID `json:"membership_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Role           Role      `json:"role"`

	// Display fields, populated only for the full projection.
	OrgName   string `json:"org_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`

	// Entitlement fields from the org's current subscription, if any.
	HasSubscription bool               `json:"has_subscription"`
	SubscriptionID  uuid.UUID          `json:"subscription_id,omitempty"`
	PlanName        PlanName           `json:"plan_name,omitempty"`
	Status          SubscriptionStatus `json:"status,omitempty"`
	PaymentStatus   PaymentStatus      `json:"payment_status,omitempty"`
	EndsAt          *time.Time         `json:"ends_at,omitempty"`
	MaxMembers      int                `json:"max_members,omitempty"`
	MaxCustomers    int                `json:"max_customers,omitempty"`
	MaxOrgs         int                `json:"max_organizations,omitempty"`
}
