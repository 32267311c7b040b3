package db_models

import "github.com/google/uuid"

type EarningSource string

const (
	SourceMediaUnlock  EarningSource = "media_unlock"
	SourcePPVMessage   EarningSource = "ppv_message"
	SourceTip          EarningSource = "tip"
	SourceSubscription EarningSource = "subscription"
)

type EarningStatus string

const (
	EarningStatusPending EarningStatus = "pending"
	EarningStatusPaid    EarningStatus = "paid"
)

// CreatorEarning records a creator's cut of one monetized event.
// The (SourceType, SourceID) pair is unique so replaying the same
// event can never produce a second row. Amounts are minor currency
// units; NetMinor = GrossMinor - CommissionMinor always holds.
type CreatorEarning struct {
	BaseModel
	CreatorID uuid.UUID `gorm:"index"`

	SourceType EarningSource `gorm:"type:varchar(24);uniqueIndex:idx_earning_source"`
	SourceID   uuid.UUID     `gorm:"uniqueIndex:idx_earning_source"`

	GrossMinor      int64
	CommissionBps   int64
	CommissionMinor int64
	NetMinor        int64

	Status EarningStatus `gorm:"type:varchar(16);index;default:'pending'"`
	PaidAt *int64

	PayoutRequestID *uuid.UUID `gorm:"index"`

	Creator Account `gorm:"foreignKey:CreatorID"`
}
