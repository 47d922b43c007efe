// internal/repository/plan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/fathomcrm/fathom/internal/model"
	"gorm.io/gorm"
)

type PlanRepositoryIface interface {
	FindByName(ctx context.Context, name model.PlanName) (*model.Plan, error)
	FindAll(ctx context.Context) ([]model.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindByName(ctx context.Context, name model.PlanName) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).First(&plan, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("finding plan by name: %w", err)
	}
	return &plan, nil
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.WithContext(ctx).Order("max_members ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding plans: %w", err)
	}
	return plans, nil
}
