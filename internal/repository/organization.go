// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	// Create inserts the organization together with its owner membership and
	// its initial current subscription, atomically.
	Create(ctx context.Context, org *model.Organization, sub *model.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Organization, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *OrganizationRepository) Begin(ctx context.Context) (Transaction, *gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}
	return &gormTransaction{tx: tx}, tx, nil
}

// Create inserts the organization, its owner membership, and its initial
// current subscription in one transaction. An organization never exists
// without an owner row or without a subscription for the gate to find.
func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization, sub *model.Subscription) error {
	txn, tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := tx.Create(org).Error; err != nil {
		txn.Rollback()
		return fmt.Errorf("creating organization: %w", err)
	}

	var owner model.User
	if err := tx.First(&owner, "id = ?", org.OwnerID).Error; err != nil {
		txn.Rollback()
		return fmt.Errorf("finding owner: %w", err)
	}

	membership := model.Membership{
		OrganizationID: org.ID,
		UserID:         org.OwnerID,
		Role:           model.RoleOwner,
		UserEmail:      owner.Email,
		OrgName:        org.Name,
	}
	if err := tx.Create(&membership).Error; err != nil {
		txn.Rollback()
		return fmt.Errorf("creating owner membership: %w", err)
	}

	sub.OrganizationID = &org.ID
	sub.Current = true
	if err := tx.Create(sub).Error; err != nil {
		txn.Rollback()
		return fmt.Errorf("creating initial subscription: %w", err)
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding owned organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Organization{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting owned organizations: %w", err)
	}
	return count, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Memberships and subscriptions go first.
		if err := tx.Where("organization_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}
		if err := tx.Where("organization_id = ?", id).Delete(&model.Subscription{}).Error; err != nil {
			return fmt.Errorf("deleting subscriptions: %w", err)
		}
		if err := tx.Where("organization_id = ?", id).Delete(&model.Customer{}).Error; err != nil {
			return fmt.Errorf("deleting customers: %w", err)
		}
		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
