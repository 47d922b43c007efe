package authz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/mocks"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func entitledContext(userID, orgID uuid.UUID, role model.Role) *model.MembershipContext {
	ends := time.Now().Add(30 * 24 * time.Hour)
	return &model.MembershipContext{
		MembershipID:    uuid.New(),
		OrganizationID:  orgID,
		UserID:          userID,
		Role:            role,
		HasSubscription: true,
		SubscriptionID:  uuid.New(),
		PlanName:        model.PlanBasic,
		Status:          model.SubStatusActive,
		PaymentStatus:   model.PaymentPaid,
		EndsAt:          &ends,
		MaxMembers:      5,
		MaxCustomers:    100,
		MaxOrgs:         3,
	}
}

func TestGateRequireAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := model.Identity{ID: uuid.New(), Email: "caller@example.com"}
	orgID := uuid.New()
	ctx := auth.WithIdentity(context.Background(), identity)

	newGate := func(memberships *mocks.MockMembershipRepositoryIface) *authz.Gate {
		store := &repository.Store{Memberships: memberships}
		return authz.NewGate(auth.ContextIdentityProvider{}, store)
	}

	t.Run("grants access to an entitled member", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(entitledContext(identity.ID, orgID, model.RoleAdmin), nil)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{
			Roles: []model.Role{model.RoleAdmin, model.RoleOwner},
		})

		assert.NoError(t, err)
		assert.NotNil(t, grant)
		assert.Equal(t, identity, grant.Identity)
		assert.Equal(t, orgID, grant.Membership.OrganizationID)
		assert.Equal(t, model.RoleAdmin, grant.Membership.Role)
		assert.NotNil(t, grant.Store())
	})

	t.Run("nil organization id", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)

		grant, err := newGate(memberships).RequireAccess(ctx, uuid.Nil, authz.AccessOptions{})

		assert.Nil(t, grant)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unauthenticated caller", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)

		grant, err := newGate(memberships).RequireAccess(context.Background(), orgID, authz.AccessOptions{})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
	})

	t.Run("caller is not a member", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(nil, domain.ErrMembershipNotFound)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindNotAMember, domain.KindOf(err))
	})

	t.Run("store failure is classified, not passed through", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(nil, errors.New("connection reset"))

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindStoreError, domain.KindOf(err))
	})

	t.Run("member denied an owner operation", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(entitledContext(identity.ID, orgID, model.RoleMember), nil)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{
			Roles: []model.Role{model.RoleOwner},
		})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindInsufficientRole, domain.KindOf(err))
		assert.Contains(t, err.Error(), "owner")
	})

	t.Run("role failure outranks subscription failure", func(t *testing.T) {
		// The membership has no subscription at all, but the caller's role
		// is checked first and must be the reported denial.
		mc := entitledContext(identity.ID, orgID, model.RoleMember)
		mc.HasSubscription = false

		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(mc, nil)

		_, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{
			Roles: []model.Role{model.RoleOwner},
		})

		assert.Equal(t, domain.KindInsufficientRole, domain.KindOf(err))
	})

	t.Run("organization without a current subscription", func(t *testing.T) {
		// Fails even when the operation asked for no minimum plan.
		mc := entitledContext(identity.ID, orgID, model.RoleOwner)
		mc.HasSubscription = false

		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(mc, nil)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindNoActivePlan, domain.KindOf(err))
	})

	t.Run("expired subscription fails only when verification is on", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		mc := entitledContext(identity.ID, orgID, model.RoleOwner)
		mc.EndsAt = &past

		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(mc, nil).
			Times(2)

		gate := newGate(memberships)

		_, err := gate.RequireAccess(ctx, orgID, authz.AccessOptions{})
		assert.NoError(t, err)

		_, err = gate.RequireAccess(ctx, orgID, authz.AccessOptions{VerifySubscription: true})
		assert.Equal(t, domain.KindPlanExpired, domain.KindOf(err))
	})

	t.Run("plan below the required tier", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(entitledContext(identity.ID, orgID, model.RoleOwner), nil)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{
			MinPlan: model.PlanPremium,
		})

		assert.Nil(t, grant)
		assert.Equal(t, domain.KindInsufficientPlan, domain.KindOf(err))
		assert.Contains(t, err.Error(), "premium")
	})

	t.Run("same denial on repeated evaluation", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(entitledContext(identity.ID, orgID, model.RoleMember), nil).
			Times(2)

		gate := newGate(memberships)
		opts := authz.AccessOptions{Roles: []model.Role{model.RoleOwner}}

		_, first := gate.RequireAccess(ctx, orgID, opts)
		_, second := gate.RequireAccess(ctx, orgID, opts)

		assert.Equal(t, domain.KindOf(first), domain.KindOf(second))
		assert.Equal(t, first.Error(), second.Error())
	})

	t.Run("full projection flag reaches the store", func(t *testing.T) {
		mc := entitledContext(identity.ID, orgID, model.RoleOwner)
		mc.OrgName = "Acme"
		mc.UserEmail = identity.Email

		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, true).
			Return(mc, nil)

		grant, err := newGate(memberships).RequireAccess(ctx, orgID, authz.AccessOptions{
			FullProjection: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme", grant.Membership.OrgName)
	})
}
