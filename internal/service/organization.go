// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/email"
	"github.com/fathomcrm/fathom/internal/email/mailer"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService owns organization and membership mutations. Every
// operation with a target organization goes through the gate first; the
// notification sender runs after success and never affects the outcome.
type OrganizationService struct {
	gate         *authz.Gate
	quota        *authz.QuotaChecker
	orgRepo      repository.OrganizationRepositoryIface
	memberRepo   repository.MembershipRepositoryIface
	userRepo     repository.UserRepositoryIface
	subRepo      repository.SubscriptionRepositoryIface
	emailService *email.Service
	validate     *validator.Validate
}

func NewOrganizationService(
	gate *authz.Gate,
	quota *authz.QuotaChecker,
	orgRepo repository.OrganizationRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	subRepo repository.SubscriptionRepositoryIface,
	emailService *email.Service,
) *OrganizationService {
	return &OrganizationService{
		gate:         gate,
		quota:        quota,
		orgRepo:      orgRepo,
		memberRepo:   memberRepo,
		userRepo:     userRepo,
		subRepo:      subRepo,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name         string  `json:"name" validate:"required"`
	ContactEmail string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string  `json:"contact_phone"`
	WebsiteURL   *string `json:"website_url" validate:"omitempty,url"`
}

// CreateOrganization creates an organization owned by the caller. There is no
// org to gate against yet, so the entitlement check runs on the caller's own
// (legacy per-user) subscription: its plan caps how many organizations one
// owner may hold.
func (s *OrganizationService) CreateOrganization(ctx context.Context, identity model.Identity, input CreateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	sub, err := s.subRepo.CurrentByUser(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.KindNoActivePlan, "no active plan: choose a plan to continue")
		}
		return nil, domain.WrapStore("fetching caller subscription", err)
	}
	if verr := authz.ValidateSubscription(authz.StateFromSubscription(sub), model.RoleOwner); verr != nil {
		return nil, verr
	}

	owned, err := s.orgRepo.CountByOwner(ctx, identity.ID)
	if err != nil {
		return nil, domain.WrapStore("counting owned organizations", err)
	}
	if owned >= int64(sub.Plan.MaxOrgs) {
		return nil, domain.NewErrorf(domain.KindQuotaExceeded,
			"organization limit reached (%d of %d on the %s plan)", owned, sub.Plan.MaxOrgs, sub.Plan.Name)
	}

	org := &model.Organization{
		Name:         input.Name,
		OwnerID:      identity.ID,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		WebsiteURL:   input.WebsiteURL,
	}

	// The organization inherits the owner's plan as its initial current
	// subscription, inserted in the same transaction as the organization
	// itself. An org without a subscription would fail every gate check.
	orgSub := &model.Subscription{
		PlanID:        sub.PlanID,
		Status:        sub.Status,
		PaymentStatus: sub.PaymentStatus,
		StartsAt:      time.Now(),
		EndsAt:        sub.EndsAt,
	}
	if err := s.orgRepo.Create(ctx, org, orgSub); err != nil {
		return nil, err
	}
	return org, nil
}

type UpdateOrganizationInput struct {
	Name         string  `json:"name"`
	ContactEmail string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string  `json:"contact_phone"`
	WebsiteURL   *string `json:"website_url" validate:"omitempty,url"`
}

// UpdateOrganization edits contact details. Owner only; zero-valued fields
// are left unchanged.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleOwner},
	}); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		org.Name = input.Name
	}
	if input.ContactEmail != "" {
		org.ContactEmail = input.ContactEmail
	}
	if input.ContactPhone != "" {
		org.ContactPhone = input.ContactPhone
	}
	if input.WebsiteURL != nil {
		org.WebsiteURL = input.WebsiteURL
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, domain.WrapStore("updating organization", err)
	}
	return org, nil
}

// DeleteOrganization removes the organization with its memberships,
// subscriptions and customers. Owner only.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, orgID uuid.UUID) error {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleOwner},
	}); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		return domain.WrapStore("deleting organization", err)
	}
	return nil
}

type InviteMemberInput struct {
	Email string     `json:"email" validate:"required,email"`
	Role  model.Role `json:"role" validate:"required,oneof=member admin"`
}

// InviteMember adds an existing user to the organization. Requires admin, a
// valid subscription, and a free member slot. The quota is advisory: two
// racing invites can both pass the check.
func (s *OrganizationService) InviteMember(ctx context.Context, orgID uuid.UUID, input InviteMemberInput) (*model.Membership, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	grant, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles:              []model.Role{model.RoleAdmin, model.RoleOwner},
		VerifySubscription: true,
		FullProjection:     true,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.quota.Check(ctx, orgID, authz.ResourceMembers)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return nil, domain.NewErrorf(domain.KindQuotaExceeded,
			"member limit reached (%d of %d)", result.Current, result.Limit)
	}

	invitee, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	membership := &model.Membership{
		OrganizationID: orgID,
		UserID:         invitee.ID,
		Role:           input.Role,
		UserEmail:      invitee.Email,
		OrgName:        grant.Membership.OrgName,
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	// Best effort: a failed notification never fails the invite.
	if s.emailService != nil {
		if err := mailer.SendMemberInvitation(s.emailService, invitee.Email, invitee.FirstName, grant.Membership.OrgName); err != nil {
			slog.Warn("sending invitation email", "error", err, "org_id", orgID)
		}
	}

	return membership, nil
}

type ChangeRoleInput struct {
	UserID uuid.UUID  `json:"user_id" validate:"required"`
	Role   model.Role `json:"role" validate:"required,oneof=member admin owner"`
}

// ChangeRole mutates a membership's role. Only the organization owner may do
// this.
func (s *OrganizationService) ChangeRole(ctx context.Context, orgID uuid.UUID, input ChangeRoleInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleOwner},
	}); err != nil {
		return err
	}

	membership, err := s.memberRepo.FindByUserAndOrg(ctx, input.UserID, orgID)
	if err != nil {
		return err
	}
	return s.memberRepo.UpdateRole(ctx, membership.ID, input.Role)
}

// RemoveMember deletes a membership. Admins can remove members; the owner's
// own membership is untouchable.
func (s *OrganizationService) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleAdmin, model.RoleOwner},
	}); err != nil {
		return err
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org.OwnerID == userID {
		return domain.ErrOwnerCannotLeave
	}

	membership, err := s.memberRepo.FindByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, membership.ID)
}

// ListMembers returns the organization's member list. Any member may read it.
func (s *OrganizationService) ListMembers(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{}); err != nil {
		return nil, err
	}
	return s.memberRepo.FindByOrganization(ctx, orgID)
}
