// internal/authz/gate.go
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathomcrm/fathom/internal/audit"
	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"
	"github.com/google/uuid"
)

// IdentityProvider yields the authenticated caller for a request, or an
// explicit absence. There is no separate error channel: an identity either
// made it into the context or it did not.
type IdentityProvider interface {
	CallerFromContext(ctx context.Context) (model.Identity, bool)
}

// AccessOptions select what the gate must verify beyond authentication and
// membership.
type AccessOptions struct {
	// Roles lists the roles that satisfy this operation; the membership must
	// meet at least one. Empty means any member passes.
	Roles []model.Role
	// MinPlan, when set, requires the organization's plan to meet this tier.
	MinPlan model.PlanName
	// VerifySubscription additionally runs the subscription validator over
	// the joined state, so expiry and payment problems fail the gate.
	// Mutating operations set this; cheap reads usually do not.
	VerifySubscription bool
	// FullProjection includes display fields in the membership projection.
	FullProjection bool
}

// Grant is the proof that a request passed every applicable check. It carries
// the caller, the flat membership projection, and a scoped store handle for
// follow-up queries.
type Grant struct {
	Identity   model.Identity
	Membership model.MembershipContext

	store *repository.Store
}

// Store returns the repository bundle for follow-up tenant-scoped queries.
func (g *Grant) Store() *repository.Store { return g.store }

// Gate is the single authorization-and-entitlement check every tenant
// operation calls before doing anything else. It performs no writes, never
// retries, and short-circuits on the first failed step, so calling it twice
// against unchanged store state yields the same outcome.
type Gate struct {
	identities IdentityProvider
	store      *repository.Store
	auditor    audit.Logger
}

// GateOption configures optional gate behavior.
type GateOption func(*Gate)

// WithAuditLogger records every gate decision on the given logger.
func WithAuditLogger(l audit.Logger) GateOption {
	return func(g *Gate) { g.auditor = l }
}

func NewGate(identities IdentityProvider, store *repository.Store, opts ...GateOption) *Gate {
	g := &Gate{identities: identities, store: store, auditor: audit.NoOpLogger{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RequireAccess authenticates the caller, resolves their membership in the
// target organization with one joined query, and applies the requested role
// and plan checks in order.
func (g *Gate) RequireAccess(ctx context.Context, orgID uuid.UUID, opts AccessOptions) (*Grant, error) {
	grant, err := g.requireAccess(ctx, orgID, opts)

	decision := audit.Decision{OrganizationID: orgID, Allowed: err == nil}
	for _, r := range opts.Roles {
		decision.RequiredRoles = append(decision.RequiredRoles, string(r))
	}
	decision.MinPlan = string(opts.MinPlan)
	if grant != nil {
		decision.UserID = grant.Identity.ID
	} else if identity, ok := g.identities.CallerFromContext(ctx); ok {
		decision.UserID = identity.ID
	}
	if err != nil {
		decision.DenialKind = string(domain.KindOf(err))
	}
	g.auditor.LogAccessDecision(ctx, decision)

	return grant, err
}

func (g *Gate) requireAccess(ctx context.Context, orgID uuid.UUID, opts AccessOptions) (*Grant, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required: %w", domain.ErrInvalidInput)
	}

	identity, ok := g.identities.CallerFromContext(ctx)
	if !ok {
		return nil, domain.NewError(domain.KindUnauthenticated, "authentication required")
	}

	mc, err := g.store.Memberships.FindWithEntitlements(ctx, identity.ID, orgID, opts.FullProjection)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.NewErrorf(domain.KindNotAMember, "not a member of organization %s", orgID)
		}
		return nil, domain.WrapStore("looking up membership", err)
	}

	if len(opts.Roles) > 0 && !RoleMeetsAny(mc.Role, opts.Roles) {
		return nil, domain.NewErrorf(domain.KindInsufficientRole,
			"requires one of roles: %s", joinRoles(opts.Roles))
	}

	// Every organization is expected to carry a current subscription; a
	// missing one fails regardless of whether a minimum plan was asked for.
	if !mc.HasSubscription {
		return nil, domain.NewError(domain.KindNoActivePlan, "organization has no active plan")
	}
	if opts.VerifySubscription {
		if verr := ValidateSubscription(StateFromContext(mc), mc.Role); verr != nil {
			return nil, verr
		}
	}
	if opts.MinPlan != "" && !PlanMeets(mc.PlanName, opts.MinPlan) {
		return nil, domain.NewErrorf(domain.KindInsufficientPlan,
			"requires one of plans: %s", joinPlans(PlansAtLeast(opts.MinPlan)))
	}

	return &Grant{Identity: identity, Membership: *mc, store: g.store}, nil
}
