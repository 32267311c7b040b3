package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

// Plan is a creator's subscription offering, priced in paid credits.
type Plan struct {
	BaseModel
	CreatorID   uuid.UUID `gorm:"index;uniqueIndex:idx_plan_creator_code"`
	Code        string    `gorm:"uniqueIndex:idx_plan_creator_code"` // e.g. "basic_monthly", "vip_yearly"
	Name        string
	Description *string

	Tier         AccessTier    `gorm:"type:varchar(16)"`
	Period       BillingPeriod `gorm:"type:varchar(8)"`
	PriceCredits int64
	TrialDays    int32 `gorm:"default:0"`
	IsActive     bool  `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Creator Account `gorm:"foreignKey:CreatorID"`
}
