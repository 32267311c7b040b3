package db_models

// CreditPackage is a purchasable bundle of credits. PriceMinor is in
// minor currency units (e.g. cents). Some packages throw in bonus
// credits on top of the paid pool.
type CreditPackage struct {
	BaseModel
	Code         string `gorm:"uniqueIndex"`
	Name         string
	PriceMinor   int64
	Currency     string `gorm:"size:3"`
	PaidCredits  int64
	BonusCredits int64
	IsActive     bool `gorm:"default:true"`
}
