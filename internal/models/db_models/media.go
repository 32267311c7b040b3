package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AccessTier string

const (
	TierFree  AccessTier = "free"
	TierBasic AccessTier = "basic"
	TierVIP   AccessTier = "vip"
)

// TierRank maps tiers to an ordinal for the legacy comparison:
// a viewer has access iff their rank >= the content's rank.
func TierRank(t AccessTier) int {
	switch t {
	case TierBasic:
		return 1
	case TierVIP:
		return 2
	default:
		return 0
	}
}

// Media is a piece of gated catalog content. The tag booleans are
// independent flags; precedence between them is decided by the access
// evaluator, not here. AccessTier is the legacy gate used when no tag
// is set.
type Media struct {
	BaseModel
	CreatorID    uuid.UUID `gorm:"index"`
	Title        string
	Description  string
	URL          string
	ThumbnailURL string

	TagFree         bool
	TagVIP          bool
	TagPPV          bool
	PPVPriceCredits int64

	AccessTier AccessTier     `gorm:"type:varchar(16);default:'free'"`
	Tags       pq.StringArray `gorm:"type:text[]"`

	Creator Account `gorm:"foreignKey:CreatorID"`
}
