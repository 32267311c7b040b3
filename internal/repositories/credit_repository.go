package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

// CreditPool selects the pool a grant lands in.
type CreditPool string

const (
	PoolPaid  CreditPool = "paid"
	PoolBonus CreditPool = "bonus"
)

// SpendPolicy selects which pools a spend may draw from. Catalog PPV
// drains bonus credits first, then paid; everything else (tips,
// subscriptions, chat PPV) is paid-only.
type SpendPolicy int

const (
	SpendPaidOnly SpendPolicy = iota
	SpendCatalog
)

// SplitSpend decides how a spend of amount is drawn from the two
// pools. Returns utils.InsufficientCreditsError when the available
// balance under the policy does not cover the amount.
func SplitSpend(paid, bonus, amount int64, policy SpendPolicy) (fromPaid, fromBonus int64, err error) {
	available := paid
	if policy == SpendCatalog {
		available += bonus
	}
	if available < amount {
		return 0, 0, &utils.InsufficientCreditsError{Required: amount, Balance: available}
	}

	if policy == SpendCatalog {
		fromBonus = bonus
		if fromBonus > amount {
			fromBonus = amount
		}
	}
	fromPaid = amount - fromBonus
	return fromPaid, fromBonus, nil
}

// SpendRequest describes one atomic debit. The optional rows are
// inserted inside the same database transaction as the balance update,
// so an unlock or an earning either commits with its debit or not at
// all.
type SpendRequest struct {
	AccountID uuid.UUID
	Amount    int64
	Policy    SpendPolicy
	Type      db_models.CreditTxnType
	Reference string

	Unlock       *db_models.UnlockRecord
	Earning      *db_models.CreatorEarning
	Subscription *db_models.Subscription
}

type SpendResult struct {
	FromPaid     int64
	FromBonus    int64
	PaidCredits  int64
	BonusCredits int64
	TxnID        uuid.UUID
}

type CreditRepository interface {
	GetOrCreateAccount(ctx context.Context, accountID uuid.UUID) (*db_models.CreditAccount, error)
	Grant(ctx context.Context, accountID uuid.UUID, amount int64, pool CreditPool, txnType db_models.CreditTxnType, reference string) (*db_models.CreditAccount, error)
	Spend(ctx context.Context, req SpendRequest) (*SpendResult, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.CreditTransaction, error)
}

type creditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) GetOrCreateAccount(ctx context.Context, accountID uuid.UUID) (*db_models.CreditAccount, error) {
	var account db_models.CreditAccount
	err := r.db.WithContext(ctx).First(&account, "account_id = ?", accountID).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = db_models.CreditAccount{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&account).Error; err != nil {
		// Lost a create race; the row exists now.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = r.db.WithContext(ctx).First(&account, "account_id = ?", accountID).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return &account, nil
}

func (r *creditRepository) Grant(ctx context.Context, accountID uuid.UUID, amount int64, pool CreditPool, txnType db_models.CreditTxnType, reference string) (*db_models.CreditAccount, error) {
	if _, err := r.GetOrCreateAccount(ctx, accountID); err != nil {
		return nil, err
	}

	var account db_models.CreditAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "account_id = ?", accountID).Error; err != nil {
			return err
		}

		if pool == PoolBonus {
			account.BonusCredits += amount
		} else {
			account.PaidCredits += amount
		}

		if err := tx.Model(&account).Updates(map[string]interface{}{
			"paid_credits":  account.PaidCredits,
			"bonus_credits": account.BonusCredits,
		}).Error; err != nil {
			return err
		}

		txn := db_models.CreditTransaction{
			AccountID: accountID,
			Amount:    amount,
			Type:      txnType,
			Reference: reference,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Spend executes a debit as one serialized read-modify-write: the
// credit account row is locked FOR UPDATE, the unlock record is
// re-checked under the lock, and the ledger row plus any attached rows
// commit together. Two concurrent spends on the same account cannot
// both read the same balance.
func (r *creditRepository) Spend(ctx context.Context, req SpendRequest) (*SpendResult, error) {
	if _, err := r.GetOrCreateAccount(ctx, req.AccountID); err != nil {
		return nil, err
	}

	var result SpendResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account db_models.CreditAccount
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "account_id = ?", req.AccountID).Error; err != nil {
			return err
		}

		if req.Unlock != nil {
			var existing db_models.UnlockRecord
			err := tx.Where("account_id = ? AND content_type = ? AND content_id = ?",
				req.Unlock.AccountID, req.Unlock.ContentType, req.Unlock.ContentID).
				First(&existing).Error
			if err == nil {
				return utils.ErrAlreadyUnlocked
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		fromPaid, fromBonus, err := SplitSpend(account.PaidCredits, account.BonusCredits, req.Amount, req.Policy)
		if err != nil {
			return err
		}

		account.PaidCredits -= fromPaid
		account.BonusCredits -= fromBonus
		if err := tx.Model(&account).Updates(map[string]interface{}{
			"paid_credits":  account.PaidCredits,
			"bonus_credits": account.BonusCredits,
		}).Error; err != nil {
			return err
		}

		txn := db_models.CreditTransaction{
			AccountID: req.AccountID,
			Amount:    -req.Amount,
			Type:      req.Type,
			FromPaid:  fromPaid,
			FromBonus: fromBonus,
			Reference: req.Reference,
		}
		txn.ID = uuid.New()
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		if req.Unlock != nil {
			if err := tx.Create(req.Unlock).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return utils.ErrAlreadyUnlocked
				}
				return err
			}
		}

		if req.Subscription != nil {
			if err := tx.Create(req.Subscription).Error; err != nil {
				return err
			}
		}

		if req.Earning != nil {
			if req.Earning.SourceID == uuid.Nil {
				// Key the earning on the ledger row: one debit, one
				// earning, replay-proof.
				req.Earning.SourceID = txn.ID
			}
			if err := tx.Create(req.Earning).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return utils.ErrDuplicateEarning
				}
				return err
			}
		}

		result = SpendResult{
			FromPaid:     fromPaid,
			FromBonus:    fromBonus,
			PaidCredits:  account.PaidCredits,
			BonusCredits: account.BonusCredits,
			TxnID:        txn.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *creditRepository) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.CreditTransaction, error) {
	var txns []db_models.CreditTransaction
	q := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
