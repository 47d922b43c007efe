package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/mocks"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	freePlan := &model.Plan{ID: uuid.New(), Name: model.PlanFree, MaxMembers: 1, MaxCustomers: 10, MaxOrgs: 1}

	input := service.SignupInput{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "long-enough-password",
	}

	t.Run("creates the account and issues a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		plans := mocks.NewMockPlanRepositoryIface(ctrl)
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Equal(t, input.Email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, input.Password, user.PasswordHash)
				user.ID = uuid.New()
				return nil
			})
		plans.EXPECT().FindByName(gomock.Any(), model.PlanFree).Return(freePlan, nil)
		subs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Signup(ctx, input)

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		identity, err := tokens.Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, out.User.ID, identity.ID)
		assert.Equal(t, input.Email, identity.Email)
	})

	t.Run("seeds a free subscription for the new account", func(t *testing.T) {
		// A fresh account must hold a current subscription immediately, or
		// every entitlement check it later meets would fail for want of one.
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		plans := mocks.NewMockPlanRepositoryIface(ctrl)
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		createdID := uuid.New()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				user.ID = createdID
				return nil
			})
		plans.EXPECT().FindByName(gomock.Any(), model.PlanFree).Return(freePlan, nil)
		subs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *model.Subscription) error {
				if assert.NotNil(t, sub.UserID) {
					assert.Equal(t, createdID, *sub.UserID)
				}
				assert.Equal(t, freePlan.ID, sub.PlanID)
				assert.Equal(t, model.SubStatusFree, sub.Status)
				assert.Equal(t, model.PaymentPaid, sub.PaymentStatus)
				assert.Nil(t, sub.EndsAt)
				return nil
			})

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Signup(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, createdID, out.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		plans := mocks.NewMockPlanRepositoryIface(ctrl)
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Signup(ctx, input)

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		plans := mocks.NewMockPlanRepositoryIface(ctrl)
		subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		weak := input
		weak.Password = "short"
		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Signup(ctx, weak)

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	plans := mocks.NewMockPlanRepositoryIface(ctrl)
	subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)

	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: hash,
		Status:       model.StatusActive,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error as a bad password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		out, err := service.NewUserService(repo, plans, subs, hasher, tokens).Login(ctx, service.LoginInput{
			Email:    "nobody@example.com",
			Password: "anything",
		})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
