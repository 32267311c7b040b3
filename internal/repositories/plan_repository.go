package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanloft/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanByCode(ctx context.Context, creatorID uuid.UUID, code string) (*db_models.Plan, error)
	ListActiveByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) GetPlanByCode(ctx context.Context, creatorID uuid.UUID, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).
		Where("creator_id = ? AND code = ? AND is_active = TRUE", creatorID, code).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepository) ListActiveByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Where("creator_id = ? AND is_active = TRUE", creatorID).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
