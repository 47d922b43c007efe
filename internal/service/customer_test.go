package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/mocks"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := model.Identity{ID: uuid.New(), Email: "member@example.com"}
	orgID := uuid.New()
	ctx := auth.WithIdentity(context.Background(), identity)

	ends := time.Now().Add(30 * 24 * time.Hour)
	basicSub := &model.Subscription{
		ID:            uuid.New(),
		Status:        model.SubStatusActive,
		PaymentStatus: model.PaymentPaid,
		EndsAt:        &ends,
		Plan:          model.Plan{Name: model.PlanBasic, MaxMembers: 5, MaxCustomers: 100, MaxOrgs: 3},
	}

	type deps struct {
		memberships *mocks.MockMembershipRepositoryIface
		subs        *mocks.MockSubscriptionRepositoryIface
		customers   *mocks.MockCustomerRepositoryIface
	}

	newService := func() (*service.CustomerService, deps) {
		d := deps{
			memberships: mocks.NewMockMembershipRepositoryIface(ctrl),
			subs:        mocks.NewMockSubscriptionRepositoryIface(ctrl),
			customers:   mocks.NewMockCustomerRepositoryIface(ctrl),
		}
		quota := authz.NewQuotaChecker(d.subs, d.memberships, d.customers)
		return service.NewCustomerService(gateFor(d.memberships), quota, d.customers), d
	}

	input := service.CreateCustomerInput{Name: "Globex", Email: "contact@globex.com"}

	t.Run("creates under the quota", func(t *testing.T) {
		svc, d := newService()

		d.memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(memberContext(identity.ID, orgID, model.RoleMember, model.PlanBasic), nil)
		d.subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		d.customers.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(99), nil)
		d.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Customer) error {
				assert.Equal(t, orgID, c.OrganizationID)
				assert.Equal(t, "Globex", c.Name)
				return nil
			})

		customer, err := svc.CreateCustomer(ctx, orgID, input)

		assert.NoError(t, err)
		assert.NotNil(t, customer)
	})

	t.Run("customer limit reached", func(t *testing.T) {
		svc, d := newService()

		d.memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(memberContext(identity.ID, orgID, model.RoleMember, model.PlanBasic), nil)
		d.subs.EXPECT().CurrentByOrganization(gomock.Any(), orgID).Return(basicSub, nil)
		d.customers.EXPECT().CountByOrganization(gomock.Any(), orgID).Return(int64(100), nil)

		customer, err := svc.CreateCustomer(ctx, orgID, input)

		assert.Nil(t, customer)
		assert.Equal(t, domain.KindQuotaExceeded, domain.KindOf(err))
	})

	t.Run("unpaid subscription blocks creation", func(t *testing.T) {
		svc, d := newService()

		mc := memberContext(identity.ID, orgID, model.RoleMember, model.PlanBasic)
		mc.PaymentStatus = model.PaymentFailed
		d.memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(mc, nil)

		customer, err := svc.CreateCustomer(ctx, orgID, input)

		assert.Nil(t, customer)
		assert.Equal(t, domain.KindPaymentIncomplete, domain.KindOf(err))
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := model.Identity{ID: uuid.New(), Email: "member@example.com"}
	orgID := uuid.New()
	customerID := uuid.New()
	ctx := auth.WithIdentity(context.Background(), identity)

	t.Run("plain member cannot delete", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepositoryIface(ctrl)
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)
		customers := mocks.NewMockCustomerRepositoryIface(ctrl)
		quota := authz.NewQuotaChecker(subs, memberships, customers)
		svc := service.NewCustomerService(gateFor(memberships), quota, customers)

		memberships.EXPECT().
			FindWithEntitlements(gomock.Any(), identity.ID, orgID, false).
			Return(memberContext(identity.ID, orgID, model.RoleMember, model.PlanBasic), nil)

		err := svc.DeleteCustomer(ctx, orgID, customerID)

		assert.Equal(t, domain.KindInsufficientRole, domain.KindOf(err))
	})
}
