package db_models

import "github.com/google/uuid"

// CreditAccount tracks the two spendable pools of a user.
// Paid credits are usable everywhere; bonus credits only unlock
// the PPV catalog. Neither pool may go negative.
type CreditAccount struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"uniqueIndex"`
	PaidCredits  int64     `gorm:"not null;default:0"`
	BonusCredits int64     `gorm:"not null;default:0"`

	Account Account `gorm:"foreignKey:AccountID"`
}

func (a *CreditAccount) TotalCredits() int64 {
	return a.PaidCredits + a.BonusCredits
}
