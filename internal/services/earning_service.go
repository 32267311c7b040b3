package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fanloft/internal/models/db_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/utils"
)

// CommissionRule holds the platform's cut parameters.
type CommissionRule struct {
	FlatBps   int64 // default platform rate in basis points
	GraceDays int   // creators keep 100% this long after signup
}

// RateFor returns the commission rate (basis points) applicable to one
// creator at a given moment. Zero during the grace window; afterwards
// the creator's override, or the platform flat rate.
func (r CommissionRule) RateFor(creator *db_models.Account, now time.Time) int64 {
	createdAt := time.Unix(creator.CreatedAt, 0)
	if now.Before(createdAt.AddDate(0, 0, r.GraceDays)) {
		return 0
	}
	if creator.CommissionBps != nil {
		return *creator.CommissionBps
	}
	return r.FlatBps
}

// CommissionMinor computes the platform cut, rounded half-up.
func CommissionMinor(grossMinor, rateBps int64) int64 {
	return (grossMinor*rateBps + 5000) / 10000
}

type EarningServiceInterface interface {
	// BuildEarning prepares a pending earning row for one monetized
	// event. SourceID may be left nil for flows that key the earning
	// on the ledger transaction created alongside it.
	BuildEarning(creator *db_models.Account, grossMinor int64, sourceType db_models.EarningSource, sourceID uuid.UUID) *db_models.CreatorEarning

	// Record inserts an earning; a duplicate (sourceType, sourceID) is
	// swallowed as a no-op per the idempotency contract.
	Record(ctx context.Context, earning *db_models.CreatorEarning) error

	PendingBalance(ctx context.Context, creatorID uuid.UUID) (int64, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit int) ([]db_models.CreatorEarning, error)
}

type EarningService struct {
	earningRepo repositories.EarningRepository
	rule        CommissionRule
}

func NewEarningService(earningRepo repositories.EarningRepository, rule CommissionRule) EarningServiceInterface {
	return &EarningService{
		earningRepo: earningRepo,
		rule:        rule,
	}
}

func (e *EarningService) BuildEarning(creator *db_models.Account, grossMinor int64, sourceType db_models.EarningSource, sourceID uuid.UUID) *db_models.CreatorEarning {
	rate := e.rule.RateFor(creator, time.Now())
	commission := CommissionMinor(grossMinor, rate)

	return &db_models.CreatorEarning{
		CreatorID:       creator.ID,
		SourceType:      sourceType,
		SourceID:        sourceID,
		GrossMinor:      grossMinor,
		CommissionBps:   rate,
		CommissionMinor: commission,
		NetMinor:        grossMinor - commission,
		Status:          db_models.EarningStatusPending,
	}
}

func (e *EarningService) Record(ctx context.Context, earning *db_models.CreatorEarning) error {
	err := e.earningRepo.Insert(ctx, earning)
	if errors.Is(err, utils.ErrDuplicateEarning) {
		return nil
	}
	return err
}

func (e *EarningService) PendingBalance(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	return e.earningRepo.PendingBalance(ctx, creatorID)
}

func (e *EarningService) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit int) ([]db_models.CreatorEarning, error) {
	return e.earningRepo.ListByCreator(ctx, creatorID, limit)
}
