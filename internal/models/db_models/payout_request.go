package db_models

import "github.com/google/uuid"

type WalletType string

const (
	WalletETH WalletType = "ETH"
	WalletBTC WalletType = "BTC"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

// PayoutRequest is a creator's withdrawal of accumulated net earnings.
// At most one non-paid request may exist per creator, and a new request
// may not be created within the cooldown window of the previous one
// regardless of its status.
type PayoutRequest struct {
	BaseModel
	// The partial unique index enforces single-outstanding at the
	// schema level: two pending rows for one creator cannot coexist no
	// matter how requests interleave.
	CreatorID uuid.UUID `gorm:"index;index:uniq_outstanding_payout,unique,where:status = 'pending'"`

	AmountMinor   int64
	WalletType    WalletType `gorm:"type:varchar(8)"`
	WalletAddress string

	// Reference to the uploaded identity document; the document itself
	// lives in the retention store and is purged after the retention
	// window.
	IDDocumentRef string

	Status PayoutStatus `gorm:"type:varchar(16);index;default:'pending'"`
	PaidAt *int64

	Creator Account `gorm:"foreignKey:CreatorID"`
}
