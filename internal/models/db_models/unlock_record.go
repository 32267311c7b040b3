package db_models

import "github.com/google/uuid"

type ContentType string

const (
	ContentMedia   ContentType = "media"
	ContentMessage ContentType = "message"
)

// UnlockRecord marks that an account paid for a piece of content.
// Once created, access is permanent regardless of later subscription
// changes. The composite unique index doubles as the guard against a
// double unlock racing past the balance check.
type UnlockRecord struct {
	BaseModel
	AccountID   uuid.UUID   `gorm:"uniqueIndex:idx_unlock_account_content"`
	ContentType ContentType `gorm:"type:varchar(16);uniqueIndex:idx_unlock_account_content"`
	ContentID   uuid.UUID   `gorm:"uniqueIndex:idx_unlock_account_content"`

	Account Account `gorm:"foreignKey:AccountID"`
}
