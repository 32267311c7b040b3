package db_models

type Role string

const (
	RoleUser    Role = "user"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         Role    `gorm:"default:'user';index"`
	Slug         *string `gorm:"uniqueIndex"` // public handle, creators only; nil for fans

	// Per-creator commission override in basis points. Nil means the
	// platform default applies.
	CommissionBps *int64

	CreditAccount *CreditAccount `gorm:"foreignKey:AccountID"`
}
