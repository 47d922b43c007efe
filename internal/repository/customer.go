// internal/repository/customer.go
package repository

import (
	"context"
	"fmt"

	"github.com/fathomcrm/fathom/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepositoryIface interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Customer, error)
	Delete(ctx context.Context, orgID, customerID uuid.UUID) error
	CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountByOrganizations(ctx context.Context, orgIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Customer, error) {
	var customers []*model.Customer
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("finding organization customers: %w", err)
	}
	return customers, nil
}

// Delete is scoped by organization id so a caller can never reach across
// tenants with a guessed customer id.
func (r *CustomerRepository) Delete(ctx context.Context, orgID, customerID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&model.Customer{}, "id = ?", customerID).Error; err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting organization customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepository) CountByOrganizations(ctx context.Context, orgIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(orgIDs))
	if len(orgIDs) == 0 {
		return counts, nil
	}
	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select("organization_id, COUNT(*) AS n").
		Where("organization_id IN ?", orgIDs).
		Group("organization_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting customers per organization: %w", err)
	}
	for _, row := range rows {
		counts[row.OrganizationID] = row.N
	}
	return counts, nil
}
