package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusTrialing SubscriptionStatus = "trialing"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusPastDue  SubscriptionStatus = "past_due"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusExpired  SubscriptionStatus = "expired"
)

// Subscription ties a fan to one creator's plan for a billing window.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	CreatorID uuid.UUID `gorm:"index"`
	PlanID    uuid.UUID `gorm:"index"`

	Status     SubscriptionStatus `gorm:"type:varchar(16);index"`
	StartsAt   int64              `gorm:"not null"`
	EndsAt     int64              `gorm:"not null"`
	CanceledAt *int64
	AutoRenew  bool `gorm:"default:true"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Creator Account `gorm:"foreignKey:CreatorID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}

// ActiveAt reports whether the subscription currently grants access.
func (s *Subscription) ActiveAt(now int64) bool {
	switch s.Status {
	case SubStatusActive, SubStatusTrialing:
		return s.EndsAt > now
	default:
		return false
	}
}
