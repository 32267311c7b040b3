package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanloft/internal/models/db_models"
)

type SubscriptionRepository interface {
	// ActiveFor returns the viewer's currently-active subscription to
	// the creator, plan preloaded, or nil.
	ActiveFor(ctx context.Context, accountID, creatorID uuid.UUID, now int64) (*db_models.Subscription, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) ActiveFor(ctx context.Context, accountID, creatorID uuid.UUID, now int64) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND creator_id = ? AND status IN ? AND ends_at > ?",
			accountID, creatorID,
			[]db_models.SubscriptionStatus{db_models.SubStatusActive, db_models.SubStatusTrialing},
			now).
		Order("ends_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Preload("Creator").
		Where("account_id = ?", accountID).
		Order("ends_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
