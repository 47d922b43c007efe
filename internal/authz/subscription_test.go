package authz_test

import (
	"testing"
	"time"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateSubscription(t *testing.T) {
	future := time.Now().Add(30 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	paidActive := authz.SubscriptionState{
		HasPlan:       true,
		Status:        model.SubStatusActive,
		PaymentStatus: model.PaymentPaid,
		EndsAt:        &future,
	}

	t.Run("active paid subscription passes", func(t *testing.T) {
		assert.Nil(t, authz.ValidateSubscription(paidActive, model.RoleMember))
	})

	t.Run("missing plan", func(t *testing.T) {
		err := authz.ValidateSubscription(authz.SubscriptionState{}, model.RoleOwner)
		assert.NotNil(t, err)
		assert.Equal(t, domain.KindNoActivePlan, err.Kind)
	})

	t.Run("expired", func(t *testing.T) {
		state := paidActive
		state.EndsAt = &past
		err := authz.ValidateSubscription(state, model.RoleOwner)
		assert.NotNil(t, err)
		assert.Equal(t, domain.KindPlanExpired, err.Kind)
	})

	t.Run("expiry outranks status and payment", func(t *testing.T) {
		// A row that is simultaneously expired, inactive and unpaid must
		// report expiry, the highest-precedence failure after existence.
		state := authz.SubscriptionState{
			HasPlan:       true,
			Status:        model.SubStatusInactive,
			PaymentStatus: model.PaymentFailed,
			EndsAt:        &past,
		}
		err := authz.ValidateSubscription(state, model.RoleOwner)
		assert.NotNil(t, err)
		assert.Equal(t, domain.KindPlanExpired, err.Kind)
	})

	t.Run("inactive status", func(t *testing.T) {
		for _, status := range []model.SubscriptionStatus{
			model.SubStatusInactive,
			model.SubStatusExpired,
			model.SubStatusCanceled,
			model.SubStatusPending,
		} {
			state := paidActive
			state.Status = status
			err := authz.ValidateSubscription(state, model.RoleOwner)
			assert.NotNil(t, err, "status %s", status)
			assert.Equal(t, domain.KindPlanNotActive, err.Kind, "status %s", status)
		}
	})

	t.Run("status outranks payment", func(t *testing.T) {
		state := paidActive
		state.Status = model.SubStatusCanceled
		state.PaymentStatus = model.PaymentFailed
		err := authz.ValidateSubscription(state, model.RoleOwner)
		assert.NotNil(t, err)
		assert.Equal(t, domain.KindPlanNotActive, err.Kind)
	})

	t.Run("payment incomplete", func(t *testing.T) {
		for _, payment := range []model.PaymentStatus{
			model.PaymentPending,
			model.PaymentFailed,
			model.PaymentRefunded,
		} {
			state := paidActive
			state.PaymentStatus = payment
			err := authz.ValidateSubscription(state, model.RoleMember)
			assert.NotNil(t, err, "payment %s", payment)
			assert.Equal(t, domain.KindPaymentIncomplete, err.Kind, "payment %s", payment)
		}
	})

	t.Run("free tier skips expiry and payment", func(t *testing.T) {
		// Free subscriptions carry whatever the seeder left in EndsAt and
		// PaymentStatus; neither may fail the check.
		state := authz.SubscriptionState{
			HasPlan:       true,
			Status:        model.SubStatusFree,
			PaymentStatus: model.PaymentPending,
			EndsAt:        &past,
		}
		assert.Nil(t, authz.ValidateSubscription(state, model.RoleMember))
	})

	t.Run("nil expiry never expires", func(t *testing.T) {
		state := paidActive
		state.EndsAt = nil
		assert.Nil(t, authz.ValidateSubscription(state, model.RoleMember))
	})

	t.Run("owner gets an actionable message", func(t *testing.T) {
		state := paidActive
		state.EndsAt = &past

		ownerErr := authz.ValidateSubscription(state, model.RoleOwner)
		memberErr := authz.ValidateSubscription(state, model.RoleMember)

		assert.Contains(t, ownerErr.Message, "renew")
		assert.Contains(t, memberErr.Message, "contact the organization owner")
		assert.Equal(t, ownerErr.Kind, memberErr.Kind)
	})
}

func TestStateFromContext(t *testing.T) {
	t.Run("nil projection", func(t *testing.T) {
		state := authz.StateFromContext(nil)
		assert.False(t, state.HasPlan)
	})

	t.Run("no subscription", func(t *testing.T) {
		state := authz.StateFromContext(&model.MembershipContext{HasSubscription: false})
		assert.False(t, state.HasPlan)
	})

	t.Run("carries subscription fields", func(t *testing.T) {
		ends := time.Now().Add(time.Hour)
		state := authz.StateFromContext(&model.MembershipContext{
			HasSubscription: true,
			Status:          model.SubStatusActive,
			PaymentStatus:   model.PaymentPaid,
			EndsAt:          &ends,
		})
		assert.True(t, state.HasPlan)
		assert.Equal(t, model.SubStatusActive, state.Status)
		assert.Equal(t, model.PaymentPaid, state.PaymentStatus)
		assert.Equal(t, &ends, state.EndsAt)
	})
}

func TestStateFromSubscription(t *testing.T) {
	t.Run("nil row", func(t *testing.T) {
		assert.False(t, authz.StateFromSubscription(nil).HasPlan)
	})

	t.Run("carries row fields", func(t *testing.T) {
		sub := &model.Subscription{
			Status:        model.SubStatusActive,
			PaymentStatus: model.PaymentPaid,
		}
		state := authz.StateFromSubscription(sub)
		assert.True(t, state.HasPlan)
		assert.Equal(t, model.SubStatusActive, state.Status)
	})
}
