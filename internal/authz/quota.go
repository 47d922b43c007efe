// internal/authz/quota.go
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ResourceKind names a countable tenant resource.
type ResourceKind string

const (
	ResourceMembers   ResourceKind = "members"
	ResourceCustomers ResourceKind = "customers"
)

// QuotaResult reports a single quota evaluation.
type QuotaResult struct {
	Allowed bool  `json:"allowed"`
	Current int64 `json:"current"`
	Limit   int   `json:"limit"`
}

// QuotaChecker compares an organization's current resource count against its
// plan-derived limit. The check is advisory: it holds no lock, so two racing
// creation requests can both pass and overshoot the limit by a small margin.
// That soft-quota behavior is accepted; strict enforcement would need a
// conditional write in the store.
type QuotaChecker struct {
	subs        repository.SubscriptionRepositoryIface
	memberships repository.MembershipRepositoryIface
	customers   repository.CustomerRepositoryIface
}

func NewQuotaChecker(
	subs repository.SubscriptionRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	customers repository.CustomerRepositoryIface,
) *QuotaChecker {
	return &QuotaChecker{subs: subs, memberships: memberships, customers: customers}
}

// Check fetches the current plan limits and the resource count concurrently
// (no ordering dependency between them) and compares. current >= limit fails.
func (q *QuotaChecker) Check(ctx context.Context, orgID uuid.UUID, kind ResourceKind) (QuotaResult, error) {
	var (
		sub     *model.Subscription
		current int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s, err := q.subs.CurrentByOrganization(egCtx, orgID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewError(domain.KindNoActivePlan, "organization has no active plan")
			}
			return domain.WrapStore("fetching plan limits", err)
		}
		sub = s
		return nil
	})
	eg.Go(func() error {
		var (
			n   int64
			err error
		)
		switch kind {
		case ResourceMembers:
			n, err = q.memberships.CountByOrganization(egCtx, orgID)
		case ResourceCustomers:
			n, err = q.customers.CountByOrganization(egCtx, orgID)
		default:
			return fmt.Errorf("unknown resource kind %q: %w", kind, domain.ErrInvalidInput)
		}
		if err != nil {
			return domain.WrapStore("counting resources", err)
		}
		current = n
		return nil
	})
	if err := eg.Wait(); err != nil {
		return QuotaResult{}, err
	}

	limit := sub.Plan.MaxMembers
	if kind == ResourceCustomers {
		limit = sub.Plan.MaxCustomers
	}

	return QuotaResult{
		Allowed: current < int64(limit),
		Current: current,
		Limit:   limit,
	}, nil
}
