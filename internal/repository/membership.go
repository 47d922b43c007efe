// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	// FindWithEntitlements fetches the membership for (user, organization) in
	// one query that joins the organization's current subscription and plan.
	// Returns domain.ErrMembershipNotFound when no membership row exists; any
	// other failure is returned as-is for the caller to classify.
	FindWithEntitlements(ctx context.Context, userID, orgID uuid.UUID, full bool) (*model.MembershipContext, error)
	Create(ctx context.Context, m *model.Membership) error
	FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	UpdateRole(ctx context.Context, membershipID uuid.UUID, role model.Role) error
	Delete(ctx context.Context, membershipID uuid.UUID) error
	CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountByOrganizations(ctx context.Context, orgIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// entitlementRow is the scan target for the joined membership query. The
// subscription side of the join is nullable.
type entitlementRow struct {
	MembershipID   uuid.UUID
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Role           model.Role
	OrgName        string
	UserEmail      string

	SubscriptionID *uuid.UUID
	PlanName       *model.PlanName
	Status         *model.SubscriptionStatus
	PaymentStatus  *model.PaymentStatus
	EndsAt         *time.Time
	MaxMembers     *int
	MaxCustomers   *int
	MaxOrgs        *int
}

func (r *MembershipRepository) FindWithEntitlements(ctx context.Context, userID, orgID uuid.UUID, full bool) (*model.MembershipContext, error) {
	cols := `memberships.id AS membership_id,
		memberships.organization_id,
		memberships.user_id,
		memberships.role,
		subscriptions.id AS subscription_id,
		plans.name AS plan_name,
		subscriptions.status,
		subscriptions.payment_status,
		subscriptions.ends_at,
		plans.max_members,
		plans.max_customers,
		plans.max_organizations AS max_orgs`
	if full {
		cols += `,
		memberships.org_name,
		memberships.user_email`
	}

	var row entitlementRow
	err := r.db.WithContext(ctx).
		Table("memberships").
		Select(cols).
		Joins("LEFT JOIN subscriptions ON subscriptions.organization_id = memberships.organization_id AND subscriptions.current").
		Joins("LEFT JOIN plans ON plans.id = subscriptions.plan_id").
		Where("memberships.user_id = ? AND memberships.organization_id = ?", userID, orgID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership with entitlements: %w", err)
	}

	mc := &model.MembershipContext{
		MembershipID:   row.MembershipID,
		OrganizationID: row.OrganizationID,
		UserID:         row.UserID,
		Role:           row.Role,
		OrgName:        row.OrgName,
		UserEmail:      row.UserEmail,
	}
	if row.SubscriptionID != nil && row.PlanName != nil {
		mc.HasSubscription = true
		mc.SubscriptionID = *row.SubscriptionID
		mc.PlanName = *row.PlanName
		mc.Status = *row.Status
		mc.PaymentStatus = *row.PaymentStatus
		mc.EndsAt = row.EndsAt
		mc.MaxMembers = *row.MaxMembers
		mc.MaxCustomers = *row.MaxCustomers
		mc.MaxOrgs = *row.MaxOrgs
	}
	return mc, nil
}

func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var members []*model.Membership
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("finding organization members: %w", err)
	}
	return members, nil
}

func (r *MembershipRepository) UpdateRole(ctx context.Context, membershipID uuid.UUID, role model.Role) error {
	result := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("id = ?", membershipID).
		Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("updating membership role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, membershipID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Membership{}, "id = ?", membershipID)
	if result.Error != nil {
		return fmt.Errorf("deleting membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting organization members: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) CountByOrganizations(ctx context.Context, orgIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(orgIDs))
	if len(orgIDs) == 0 {
		return counts, nil
	}
	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Select("organization_id, COUNT(*) AS n").
		Where("organization_id IN ?", orgIDs).
		Group("organization_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting members per organization: %w", err)
	}
	for _, row := range rows {
		counts[row.OrganizationID] = row.N
	}
	return counts, nil
}

// countRow scans grouped per-organization counts.
type countRow struct {
	OrganizationID uuid.UUID
	N              int64
}
