// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/go-playground/validator/v10"
)

// UserService covers account signup and login. It sits outside the gate:
// these are the only operations with no target organization. Every new
// account starts on the free plan so the entitlement checks downstream
// always have a subscription to find.
type UserService struct {
	repo           repository.UserRepositoryIface
	planRepo       repository.PlanRepositoryIface
	subRepo        repository.SubscriptionRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	planRepo repository.PlanRepositoryIface,
	subRepo repository.SubscriptionRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *UserService {
	return &UserService{
		repo:           repo,
		planRepo:       planRepo,
		subRepo:        subRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Status:       model.StatusActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Seed the free plan. Without it the new account could never pass an
	// entitlement check, including the one guarding its first plan change.
	freePlan, err := s.planRepo.FindByName(ctx, model.PlanFree)
	if err != nil {
		return nil, fmt.Errorf("fetching free plan: %w", err)
	}
	sub := &model.Subscription{
		UserID:        &user.ID,
		PlanID:        freePlan.ID,
		Status:        model.SubStatusFree,
		PaymentStatus: model.PaymentPaid,
		StartsAt:      time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, domain.WrapStore("seeding free subscription", err)
	}

	token, err := s.tokenManager.Generate(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}
