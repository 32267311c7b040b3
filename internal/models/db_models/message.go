package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Message is a direct message from a creator to a fan. A PPV message
// hides its attachments until the recipient pays PriceCredits from the
// paid pool (bonus credits never apply to chat).
type Message struct {
	BaseModel
	SenderID    uuid.UUID `gorm:"index"`
	RecipientID uuid.UUID `gorm:"index"`
	Body        string

	IsPPV        bool
	PriceCredits int64
	MediaURLs    pq.StringArray `gorm:"type:text[]"`

	Sender    Account `gorm:"foreignKey:SenderID"`
	Recipient Account `gorm:"foreignKey:RecipientID"`
}
