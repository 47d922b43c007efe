package authz_test

import (
	"context"
	"testing"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/mocks"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestQuotaCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()

	basicSub := &model.Subscription{
		ID:     uuid.New(),
		Status: model.SubStatusActive,
		Plan:   model.Plan{Name: model.PlanBasic, MaxMembers: 5, MaxCustomers: 100},
	}

	newChecker := func() (*authz.QuotaChecker, *mocks.MockSubscriptionRepositoryIface, *mocks.MockMembershipRepositoryIface, *mocks.MockCustomerRepositoryIface) {
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		customers := mocks.NewMockCustomerRepositoryIface(ctrl)
		return authz.NewQuotaChecker(subs, memberships, customers), subs, memberships, customers
	}

	t.Run("below the limit", func(t *testing.T) {
		checker, subs, memberships, _ := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		memberships.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(4), nil)

		result, err := checker.Check(ctx, orgID, authz.ResourceMembers)

		assert.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Current)
		assert.Equal(t, 5, result.Limit)
	})

	t.Run("at the limit blocks", func(t *testing.T) {
		checker, subs, memberships, _ := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		memberships.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(5), nil)

		result, err := checker.Check(ctx, orgID, authz.ResourceMembers)

		assert.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(5), result.Current)
		assert.Equal(t, 5, result.Limit)
	})

	t.Run("over the limit blocks", func(t *testing.T) {
		// Soft quotas can overshoot; the check must still report it.
		checker, subs, memberships, _ := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		memberships.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(7), nil)

		result, err := checker.Check(ctx, orgID, authz.ResourceMembers)

		assert.NoError(t, err)
		assert.False(t, result.Allowed)
	})

	t.Run("customers use the customer limit", func(t *testing.T) {
		checker, subs, _, customers := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		customers.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(99), nil)

		result, err := checker.Check(ctx, orgID, authz.ResourceCustomers)

		assert.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 100, result.Limit)
	})

	t.Run("no current subscription", func(t *testing.T) {
		checker, subs, memberships, _ := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(nil, domain.ErrNotFound)
		memberships.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(1), nil).AnyTimes()

		_, err := checker.Check(ctx, orgID, authz.ResourceMembers)

		assert.Equal(t, domain.KindNoActivePlan, domain.KindOf(err))
	})

	t.Run("unknown resource kind", func(t *testing.T) {
		checker, subs, _, _ := newChecker()
		subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil).AnyTimes()

		_, err := checker.Check(ctx, orgID, authz.ResourceKind("widgets"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
