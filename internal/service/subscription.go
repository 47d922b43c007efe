// internal/service/subscription.go
package service

import (
	"context"
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

// SubscriptionService owns plan changes. Downgrades run through the impact
// analyzer and are refused while any owned organization would exceed the
// target plan's limits.
type SubscriptionService struct {
	gate         *authz.Gate
	analyzer     *authz.DowngradeAnalyzer
	planRepo     repository.PlanRepositoryIface
	subRepo      repository.SubscriptionRepositoryIface
	emailService *email.Service
	validate     *validator.Validate
}

func NewSubscriptionService(
	gate *authz.Gate,
	analyzer *authz.DowngradeAnalyzer,
	planRepo repository.PlanRepositoryIface,
	subRepo repository.SubscriptionRepositoryIface,
	emailService *email.Service,
) *SubscriptionService {
	return &SubscriptionService{
		gate:         gate,
		analyzer:     analyzer,
		planRepo:     planRepo,
		subRepo:      subRepo,
		emailService: emailService,
		validate:     validator.New(),
	}
}

// GetSubscription returns the organization's current subscription. Any member
// may read it.
func (s *SubscriptionService) GetSubscription(ctx context.Context, orgID uuid.UUID) (*model.Subscription, error) {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{}); err != nil {
		return nil, err
	}
	return s.subRepo.CurrentByOrganization(ctx, orgID)
}

// History returns the append-only subscription history, newest first.
func (s *SubscriptionService) History(ctx context.Context, orgID uuid.UUID) ([]model.Subscription, error) {
	if _, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{}); err != nil {
		return nil, err
	}
	return s.subRepo.History(ctx, orgID)
}

// CheckDowngrade runs the impact analysis without changing anything. Owner
// only; the target must actually be a downgrade from the current plan.
func (s *SubscriptionService) CheckDowngrade(ctx context.Context, orgID uuid.UUID, target model.PlanName) (*authz.DowngradeResult, error) {
	grant, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles: []model.Role{model.RoleOwner},
	})
	if err != nil {
		return nil, err
	}

	if !authz.IsDowngrade(grant.Membership.PlanName, target) {
		return nil, fmt.Errorf("%s to %s: %w", grant.Membership.PlanName, target, domain.ErrNotADowngrade)
	}

	return s.analyzer.Check(ctx, grant.Identity, target)
}

type ChangePlanInput struct {
	Plan model.PlanName `json:"plan" validate:"required,oneof=free basic premium"`
}

type ChangePlanOutput struct {
	Subscription *model.Subscription    `json:"subscription,omitempty"`
	Downgrade    *authz.DowngradeResult `json:"downgrade,omitempty"`
}

// ChangePlan moves the organization to a new plan. Upgrades go straight
// through; downgrades are analyzed first and refused with the full violation
// list when any limit would break. The old subscription row stays as history.
func (s *SubscriptionService) ChangePlan(ctx context.Context, orgID uuid.UUID, input ChangePlanInput) (*ChangePlanOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	grant, err := s.gate.RequireAccess(ctx, orgID, authz.AccessOptions{
		Roles:          []model.Role{model.RoleOwner},
		FullProjection: true,
	})
	if err != nil {
		return nil, err
	}

	out := &ChangePlanOutput{}

	if authz.IsDowngrade(grant.Membership.PlanName, input.Plan) {
		result, err := s.analyzer.Check(ctx, grant.Identity, input.Plan)
		if err != nil {
			return nil, err
		}
		out.Downgrade = result
		if !result.Valid {
			return out, domain.NewErrorf(domain.KindQuotaExceeded,
				"cannot downgrade to %s: %d limit violation(s)", input.Plan, len(result.Violations))
		}
	}

	plan, err := s.planRepo.FindByName(ctx, input.Plan)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &model.Subscription{
		PlanID:        plan.ID,
		Status:        model.SubStatusActive,
		PaymentStatus: model.PaymentPaid,
		StartsAt:      now,
	}
	if plan.Name == model.PlanFree {
		sub.Status = model.SubStatusFree
	} else {
		ends := now.AddDate(0, 1, 0)
		sub.EndsAt = &ends
	}

	if err := s.subRepo.ChangePlan(ctx, orgID, sub); err != nil {
		return nil, domain.WrapStore("changing plan", err)
	}
	sub.Plan = *plan
	out.Subscription = sub

	// Best effort: the plan change stands whether or not the email lands.
	if s.emailService != nil {
		if err := mailer.SendPlanChanged(s.emailService, grant.Identity.Email, grant.Membership.OrgName, string(plan.Name)); err != nil {
			slog.Warn("sending plan change email", "error", err, "org_id", orgID)
		}
	}

	return out, nil
}
