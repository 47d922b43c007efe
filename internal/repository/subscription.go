// internal/repository/subscription.go
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

type SubscriptionRepositoryIface interface {
	// CurrentByOrganization returns the organization's single current
	// subscription with its plan preloaded, or domain.ErrNotFound.
	CurrentByOrganization(ctx context.Context, orgID uuid.UUID) (*model.Subscription, error)
	// CurrentByUser covers the legacy per-user subscription path.
	CurrentByUser(ctx context.Context, userID uuid.UUID) (*model.Subscription, error)
	// Create inserts a subscription row marked current. Used for the free
	// seed at signup; later plan changes go through ChangePlan.
	Create(ctx context.Context, sub *model.Subscription) error
	// ChangePlan deactivates the current row and inserts a new one, keeping
	// the history append-only.
	ChangePlan(ctx context.Context, orgID uuid.UUID, sub *model.Subscription) error
	History(ctx context.Context, orgID uuid.UUID) ([]model.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) CurrentByOrganization(ctx context.Context, orgID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("organization_id = ? AND current", orgID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding current subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) CurrentByUser(ctx context.Context, userID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND current", userID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding current user subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	sub.Current = true
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) ChangePlan(ctx context.Context, orgID uuid.UUID, sub *model.Subscription) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Subscription{}).
			Where("organization_id = ? AND current", orgID).
			Updates(map[string]any{"current": false, "updated_at": time.Now()}).Error; err != nil {
			return fmt.Errorf("deactivating current subscription: %w", err)
		}

		sub.OrganizationID = &orgID
		sub.Current = true
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("creating subscription: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) History(ctx context.Context, orgID uuid.UUID) ([]model.Subscription, error) {
	var subs []model.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("finding subscription history: %w", err)
	}
	return subs, nil
}
