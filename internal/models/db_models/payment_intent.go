package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentIntent is one attempt to buy a credit package through an
// external gateway. ProviderTxnID is the idempotency key: webhook
// retries and status polls for the same gateway payment always land on
// the same row, and credits are granted at most once when it flips to
// paid.
type PaymentIntent struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PackageID uuid.UUID `gorm:"index"`

	AmountMinor int64
	Currency    string        `gorm:"size:3"`
	Status      PaymentStatus `gorm:"type:varchar(16);index"`

	Provider      string `gorm:"index"` // "payos", "coinpay"
	ProviderTxnID string `gorm:"uniqueIndex"`

	PaidAt     *int64
	RefundedAt *int64

	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account       `gorm:"foreignKey:AccountID"`
	Package CreditPackage `gorm:"foreignKey:PackageID"`
}
