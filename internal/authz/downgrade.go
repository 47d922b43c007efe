// internal/authz/downgrade.go
package authz

import (
	"context"
	"fmt"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Violation is one limit the caller's current usage would break under the
// target plan. Dimension is "organizations", "members" or "customers"; the
// organizations dimension is caller-wide and carries no org id.
type Violation struct {
	Dimension        string    `json:"dimension"`
	OrganizationID   uuid.UUID `json:"organization_id,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Current          int64     `json:"current"`
	Limit            int       `json:"limit"`
	Message          string    `json:"message"`
}

// Usage aggregates the caller's footprint across owned organizations, for
// display alongside the violations.
type Usage struct {
	Organizations  int   `json:"organizations"`
	TotalMembers   int64 `json:"total_members"`
	TotalCustomers int64 `json:"total_customers"`
}

// DowngradeResult carries every violation the plan change would cause, not
// just the first one.
type DowngradeResult struct {
	Valid      bool           `json:"is_valid"`
	TargetPlan model.PlanName `json:"target_plan"`
	Violations []Violation    `json:"violations"`
	Usage      Usage          `json:"current_usage"`
}

// DowngradeAnalyzer fans out across every organization the caller owns and
// reports each limit the target plan would violate. It only ever runs on a
// downgrade; upgrades cannot produce violations since limits grow with tiers.
type DowngradeAnalyzer struct {
	plans       repository.PlanRepositoryIface
	orgs        repository.OrganizationRepositoryIface
	memberships repository.MembershipRepositoryIface
	customers   repository.CustomerRepositoryIface
}

func NewDowngradeAnalyzer(
	plans repository.PlanRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	customers repository.CustomerRepositoryIface,
) *DowngradeAnalyzer {
	return &DowngradeAnalyzer{plans: plans, orgs: orgs, memberships: memberships, customers: customers}
}

// Check computes the impact of moving the caller to targetPlan. Per-org
// member and customer counts come from two grouped bulk queries issued
// concurrently, never from per-org round trips.
func (a *DowngradeAnalyzer) Check(ctx context.Context, identity model.Identity, targetPlan model.PlanName) (*DowngradeResult, error) {
	plan, err := a.plans.FindByName(ctx, targetPlan)
	if err != nil {
		return nil, fmt.Errorf("fetching target plan %q: %w", targetPlan, err)
	}

	owned, err := a.orgs.FindByOwner(ctx, identity.ID)
	if err != nil {
		return nil, domain.WrapStore("fetching owned organizations", err)
	}

	result := &DowngradeResult{
		TargetPlan: targetPlan,
		Usage:      Usage{Organizations: len(owned)},
	}

	if len(owned) > plan.MaxOrgs {
		result.Violations = append(result.Violations, Violation{
			Dimension: "organizations",
			Current:   int64(len(owned)),
			Limit:     plan.MaxOrgs,
			Message: fmt.Sprintf("you own %d organizations but the %s plan allows %d",
				len(owned), targetPlan, plan.MaxOrgs),
		})
	}

	orgIDs := make([]uuid.UUID, len(owned))
	for i, org := range owned {
		orgIDs[i] = org.ID
	}

	var memberCounts, customerCounts map[uuid.UUID]int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		counts, err := a.memberships.CountByOrganizations(egCtx, orgIDs)
		if err != nil {
			return domain.WrapStore("counting members per organization", err)
		}
		memberCounts = counts
		return nil
	})
	eg.Go(func() error {
		counts, err := a.customers.CountByOrganizations(egCtx, orgIDs)
		if err != nil {
			return domain.WrapStore("counting customers per organization", err)
		}
		customerCounts = counts
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, org := range owned {
		members := memberCounts[org.ID]
		customers := customerCounts[org.ID]
		result.Usage.TotalMembers += members
		result.Usage.TotalCustomers += customers

		if members > int64(plan.MaxMembers) {
			result.Violations = append(result.Violations, Violation{
				Dimension:        "members",
				OrganizationID:   org.ID,
				OrganizationName: org.Name,
				Current:          members,
				Limit:            plan.MaxMembers,
				Message: fmt.Sprintf("%s has %d members but the %s plan allows %d",
					org.Name, members, targetPlan, plan.MaxMembers),
			})
		}
		if customers > int64(plan.MaxCustomers) {
			result.Violations = append(result.Violations, Violation{
				Dimension:        "customers",
				OrganizationID:   org.ID,
				OrganizationName: org.Name,
				Current:          customers,
				Limit:            plan.MaxCustomers,
				Message: fmt.Sprintf("%s has %d customers but the %s plan allows %d",
					org.Name, customers, targetPlan, plan.MaxCustomers),
			})
		}
	}

	result.Valid = len(result.Violations) == 0
	return result, nil
}
