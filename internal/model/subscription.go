// internal/model/subscription.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusFree     SubscriptionStatus = "free"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusInactive SubscriptionStatus = "inactive"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusPending  SubscriptionStatus = "pending"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Subscription belongs to exactly one organization, or, on the legacy path,
// directly to a user. Both shapes share this row; exactly one of
// OrganizationID / UserID is set. Rows are append-only history: a plan change
// clears Current on the old row and inserts a new one.
type Subscription struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	UserID         *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	PlanID         uuid.UUID  `gorm:"type:uuid;not null" json:"plan_id"`

	Status        SubscriptionStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus      `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	StartsAt      time.Time          `json:"starts_at"`
	EndsAt        *time.Time         `json:"ends_at,omitempty"`
	Current       bool               `gorm:"not null;default:true" json:"current"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Plan Plan `gorm:"foreignKey:PlanID" json:"plan"`
}
