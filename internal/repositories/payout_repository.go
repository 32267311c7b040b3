package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

// ResolvePayoutAmount applies the payout preconditions: at most one
// non-paid request per creator, cooldown measured from the previous
// request's creation time regardless of its status, pending balance at
// or above the minimum, and the requested amount within the pending
// balance. A requested amount of zero means "withdraw the full pending
// balance". last is nil for a creator with no prior requests.
func ResolvePayoutAmount(last *db_models.PayoutRequest, now time.Time, cooldown time.Duration, pending, requested, minMinor int64) (int64, error) {
	if last != nil {
		if last.Status != db_models.PayoutStatusPaid {
			return 0, utils.ErrPayoutOutstanding
		}
		elapsed := now.Sub(time.Unix(last.CreatedAt, 0))
		if elapsed < cooldown {
			return 0, &utils.CooldownError{RetryIn: cooldown - elapsed}
		}
	}

	if pending < minMinor {
		return 0, utils.ErrBelowMinimumPayout
	}
	if requested == 0 {
		requested = pending
	}
	if requested > pending {
		return 0, utils.ErrBelowMinimumPayout
	}
	return requested, nil
}

// SettleablePrefix returns how many of the given earnings, in order, a
// payout of amount covers. Settlement never splits an earning row: a
// row that does not fit whole stops the scan.
func SettleablePrefix(earnings []db_models.CreatorEarning, amount int64) int {
	n := 0
	for i := range earnings {
		if amount < earnings[i].NetMinor {
			break
		}
		amount -= earnings[i].NetMinor
		n++
	}
	return n
}

type PayoutRepository interface {
	// CreateRequest validates the single-outstanding rule, the
	// cooldown and the minimum threshold inside the same transaction
	// that inserts the row, so two rapid requests cannot both pass.
	// request.AmountMinor of zero means "withdraw the full pending
	// balance".
	CreateRequest(ctx context.Context, request *db_models.PayoutRequest, minMinor int64, cooldown time.Duration) error

	// MarkPaid flips a pending request to paid and settles the
	// creator's pending earnings oldest-first up to the requested
	// amount, in one transaction.
	MarkPaid(ctx context.Context, requestID uuid.UUID) (*db_models.PayoutRequest, error)

	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PayoutRequest, error)
}

type payoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

// lockCreatorPayouts takes a transaction-scoped advisory lock keyed on
// the creator, held until commit or rollback.
func lockCreatorPayouts(tx *gorm.DB, creatorID uuid.UUID) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", creatorID.String()).Error
}

func (p *payoutRepository) CreateRequest(ctx context.Context, request *db_models.PayoutRequest, minMinor int64, cooldown time.Duration) error {
	now := time.Now()

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize payout activity per creator. A row lock cannot do
		// this: a first-ever request has no row to lock, and a blocked
		// reader re-checks only the row it waited on, never rows the
		// winner inserted.
		if err := lockCreatorPayouts(tx, request.CreatorID); err != nil {
			return err
		}

		var last db_models.PayoutRequest
		err := tx.Where("creator_id = ?", request.CreatorID).
			Order("created_at DESC").
			First(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		prev := &last
		if errors.Is(err, gorm.ErrRecordNotFound) {
			prev = nil
		}

		var pending int64
		if err := tx.Model(&db_models.CreatorEarning{}).
			Where("creator_id = ? AND status = ?", request.CreatorID, db_models.EarningStatusPending).
			Select("COALESCE(SUM(net_minor), 0)").
			Scan(&pending).Error; err != nil {
			return err
		}

		amount, err := ResolvePayoutAmount(prev, now, cooldown, pending, request.AmountMinor, minMinor)
		if err != nil {
			return err
		}

		request.AmountMinor = amount
		request.Status = db_models.PayoutStatusPending
		if err := tx.Create(request).Error; err != nil {
			// The partial unique index on pending rows backstops the
			// outstanding check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrPayoutOutstanding
			}
			return err
		}
		return nil
	})
}

func (p *payoutRepository) MarkPaid(ctx context.Context, requestID uuid.UUID) (*db_models.PayoutRequest, error) {
	var request db_models.PayoutRequest

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrRecordNotFound
			}
			return err
		}

		if request.Status != db_models.PayoutStatusPending {
			return utils.ErrRecordNotFound
		}

		// Keep the settlement atomic against a concurrent request for
		// the same creator reading the pending sum.
		if err := lockCreatorPayouts(tx, request.CreatorID); err != nil {
			return err
		}

		paidAt := time.Now().Unix()
		if err := tx.Model(&request).Updates(map[string]interface{}{
			"status":  db_models.PayoutStatusPaid,
			"paid_at": paidAt,
		}).Error; err != nil {
			return err
		}
		request.Status = db_models.PayoutStatusPaid
		request.PaidAt = &paidAt

		// Settle earnings oldest-first, bounded by the requested
		// amount.
		var earnings []db_models.CreatorEarning
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("creator_id = ? AND status = ?", request.CreatorID, db_models.EarningStatusPending).
			Order("created_at ASC").
			Find(&earnings).Error; err != nil {
			return err
		}

		settle := SettleablePrefix(earnings, request.AmountMinor)
		for i := 0; i < settle; i++ {
			if err := tx.Model(&earnings[i]).Updates(map[string]interface{}{
				"status":            db_models.EarningStatusPaid,
				"paid_at":           paidAt,
				"payout_request_id": request.ID,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (p *payoutRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PayoutRequest, error) {
	var requests []db_models.PayoutRequest
	err := p.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
