package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

type EarningRepository interface {
	// Insert appends an earning row. A replay of the same
	// (sourceType, sourceID) returns utils.ErrDuplicateEarning.
	Insert(ctx context.Context, earning *db_models.CreatorEarning) error
	PendingBalance(ctx context.Context, creatorID uuid.UUID) (int64, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit int) ([]db_models.CreatorEarning, error)
}

type earningRepository struct {
	db *gorm.DB
}

func NewEarningRepository(db *gorm.DB) EarningRepository {
	return &earningRepository{db: db}
}

func (e *earningRepository) Insert(ctx context.Context, earning *db_models.CreatorEarning) error {
	err := e.db.WithContext(ctx).Create(earning).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDuplicateEarning
		}
		return err
	}
	return nil
}

func (e *earningRepository) PendingBalance(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	var sum int64
	err := e.db.WithContext(ctx).
		Model(&db_models.CreatorEarning{}).
		Where("creator_id = ? AND status = ?", creatorID, db_models.EarningStatusPending).
		Select("COALESCE(SUM(net_minor), 0)").
		Scan(&sum).Error
	return sum, err
}

func (e *earningRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit int) ([]db_models.CreatorEarning, error) {
	var earnings []db_models.CreatorEarning
	q := e.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&earnings).Error; err != nil {
		return nil, err
	}
	return earnings, nil
}
