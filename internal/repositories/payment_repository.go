package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

type PaymentRepository interface {
	CreateIntent(ctx context.Context, intent *db_models.PaymentIntent) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.PaymentIntent, error)
	MarkFailed(ctx context.Context, intentID string) error
	ListPackages(ctx context.Context) ([]db_models.CreditPackage, error)
	FindPackageByCode(ctx context.Context, code string) (*db_models.CreditPackage, error)

	// ApplyPaidIntent flips a pending intent to paid and grants the
	// package credits in one transaction. Dedupe is by provider txn
	// id: an already-paid intent is a no-op and returns applied=false.
	ApplyPaidIntent(ctx context.Context, providerTxnID string) (intent *db_models.PaymentIntent, applied bool, err error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) CreateIntent(ctx context.Context, intent *db_models.PaymentIntent) error {
	return p.db.WithContext(ctx).Create(intent).Error
}

func (p *paymentRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.PaymentIntent, error) {
	var intent db_models.PaymentIntent
	err := p.db.WithContext(ctx).First(&intent, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &intent, nil
}

func (p *paymentRepository) MarkFailed(ctx context.Context, intentID string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.PaymentIntent{}).
		Where("id = ? AND status = ?", intentID, db_models.PaymentStatusPending).
		Update("status", db_models.PaymentStatusFailed).Error
}

func (p *paymentRepository) ListPackages(ctx context.Context) ([]db_models.CreditPackage, error) {
	var packages []db_models.CreditPackage
	err := p.db.WithContext(ctx).Where("is_active = TRUE").Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (p *paymentRepository) FindPackageByCode(ctx context.Context, code string) (*db_models.CreditPackage, error) {
	var pkg db_models.CreditPackage
	err := p.db.WithContext(ctx).
		Where("code = ? AND is_active = TRUE", code).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (p *paymentRepository) ApplyPaidIntent(ctx context.Context, providerTxnID string) (*db_models.PaymentIntent, bool, error) {
	var intent db_models.PaymentIntent
	applied := false

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&intent, "provider_txn_id = ?", providerTxnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrRecordNotFound
			}
			return err
		}

		if intent.Status == db_models.PaymentStatusPaid {
			// Webhook retry or a second poll; nothing to do.
			return nil
		}
		if intent.Status != db_models.PaymentStatusPending {
			return utils.ErrGatewayUnconfirmed
		}

		var pkg db_models.CreditPackage
		if err := tx.First(&pkg, "id = ?", intent.PackageID).Error; err != nil {
			return err
		}

		now := time.Now().Unix()
		if err := tx.Model(&intent).Updates(map[string]interface{}{
			"status":  db_models.PaymentStatusPaid,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}
		intent.Status = db_models.PaymentStatusPaid
		intent.PaidAt = &now

		var account db_models.CreditAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "account_id = ?", intent.AccountID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			account = db_models.CreditAccount{AccountID: intent.AccountID}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		account.PaidCredits += pkg.PaidCredits
		account.BonusCredits += pkg.BonusCredits
		if err := tx.Model(&account).Updates(map[string]interface{}{
			"paid_credits":  account.PaidCredits,
			"bonus_credits": account.BonusCredits,
		}).Error; err != nil {
			return err
		}

		txn := db_models.CreditTransaction{
			AccountID: intent.AccountID,
			Amount:    pkg.PaidCredits + pkg.BonusCredits,
			Type:      db_models.TxnPurchase,
			Reference: providerTxnID,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &intent, applied, nil
}
