// internal/service/customer.go
package service

import (
	"context"
	"fmt"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CustomerService owns the countable tenant resource. Creation is gated and
// quota-checked; reads are gated only.
type CustomerService struct {
	gate     *authz.Gate
	quota    *authz.QuotaChecker
	repo     repository.CustomerRepositoryIface
	validate *validator.Validate
}

func NewCustomerService(gate *authz.Gate, quota *authz.QuotaChecker, repo repository.CustomerRepositoryIface) *CustomerService {
	return &CustomerService{
		gate:     gate,
		quota:    quota,
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateCustomerInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (s *CustomerService) CreateCustomer(ctx context.Context, orgID uuid.UUID, input CreateCustomerInput) (*model.Customer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		VerifySubscription: true,
	}); err != nil {
		return nil, err
	}

	result, err := s.quota.Check(ctx, orgID, authz.ResourceCustomers)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return nil, domain.NewErrorf(domain.KindQuotaExceeded,
			"customer limit reached (%d of %d)", result.Current, result.Limit)
	}

	customer := &model.Customer{
		OrganizationID: orgID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, domain.WrapStore("creating customer", err)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, orgID uuid.UUID) ([]*model.Customer, error) {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{}); err != nil {
		return nil, err
	}
	return s.repo.FindByOrganization(ctx, orgID)
}

// CheckQuota surfaces the advisory quota state for display.
func (s *CustomerService) CheckQuota(ctx context.Context, orgID uuid.UUID, kind authz.ResourceKind) (authz.QuotaResult, error) {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{}); err != nil {
		return authz.QuotaResult{}, err
	}
	return s.quota.Check(ctx, orgID, kind)
}

// DeleteCustomer removes a customer. Admins and owners only.
func (s *CustomerService) DeleteCustomer(ctx context.Context, orgID, customerID uuid.UUID) error {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleAdmin, model.RoleOwner},
	}); err != nil {
		return err
	}
	return s.repo.Delete(ctx, orgID, customerID)
}
