package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreditTxnType string

const (
	TxnPurchase     CreditTxnType = "purchase"
	TxnAdminGrant   CreditTxnType = "admin_grant"
	TxnMediaUnlock  CreditTxnType = "media_unlock"
	TxnPPVMessage   CreditTxnType = "ppv_message"
	TxnTip          CreditTxnType = "tip"
	TxnSubscription CreditTxnType = "subscription"
	TxnRefund       CreditTxnType = "refund"
)

// CreditTransaction is an append-only ledger row. Amount is signed:
// positive for grants, negative for spends. The sum of all rows for an
// account must equal PaidCredits + BonusCredits at any point in time.
type CreditTransaction struct {
	BaseModel
	AccountID uuid.UUID     `gorm:"index"`
	Amount    int64         `gorm:"not null"`
	Type      CreditTxnType `gorm:"type:varchar(32);index"`

	// How a spend was split across pools (both zero for grants).
	FromPaid  int64
	FromBonus int64

	Reference string         `gorm:"index"` // content id, provider txn id, etc.
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
