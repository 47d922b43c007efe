// internal/authz/subscription.go
package authz

import (
	"time"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
)

// SubscriptionState is the slice of a subscription row the validator needs.
// It can be built from a full Subscription row or from the gate's joined
// projection.
type SubscriptionState struct {
	HasPlan       bool
	Status        model.SubscriptionStatus
	PaymentStatus model.PaymentStatus
	EndsAt        *time.Time
}

// StateFromContext extracts the validator input from a gate projection.
func StateFromContext(mc *model.MembershipContext) SubscriptionState {
	if mc == nil || !mc.HasSubscription {
		return SubscriptionState{}
	}
	return SubscriptionState{
		HasPlan:       true,
		Status:        mc.Status,
		PaymentStatus: mc.PaymentStatus,
		EndsAt:        mc.EndsAt,
	}
}

// StateFromSubscription extracts the validator input from a subscription row.
func StateFromSubscription(sub *model.Subscription) SubscriptionState {
	if sub == nil {
		return SubscriptionState{}
	}
	return SubscriptionState{
		HasPlan:       true,
		Status:        sub.Status,
		PaymentStatus: sub.PaymentStatus,
		EndsAt:        sub.EndsAt,
	}
}

// ValidateSubscription checks a subscription against time and payment rules
// and reports the first violated condition only, in a fixed precedence:
// missing plan, expired, not active, payment incomplete. Free-tier
// subscriptions have no expiry or payment concept and skip everything after
// the existence check. The role tailors the message, nothing else.
func ValidateSubscription(state SubscriptionState, role model.Role) *domain.Error {
	if !state.HasPlan {
		return domain.NewError(domain.KindNoActivePlan, "no active plan: "+remedy(role, "choose a plan"))
	}
	if state.Status == model.SubStatusFree {
		return nil
	}
	if state.EndsAt != nil && state.EndsAt.Before(time.Now()) {
		return domain.NewError(domain.KindPlanExpired, "plan expired: "+remedy(role, "renew the plan"))
	}
	if state.Status != model.SubStatusActive {
		return domain.NewErrorf(domain.KindPlanNotActive, "plan is %s: %s", state.Status, remedy(role, "reactivate the plan"))
	}
	if state.PaymentStatus != model.PaymentPaid {
		return domain.NewErrorf(domain.KindPaymentIncomplete, "payment is %s: %s", state.PaymentStatus, remedy(role, "complete payment"))
	}
	return nil
}

func remedy(role model.Role, ownerAction string) string {
	if role == model.RoleOwner {
		return ownerAction + " to continue"
	}
	return "contact the organization owner"
}
