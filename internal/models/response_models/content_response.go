package response_models

type MediaItemResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Tags         []string `json:"tags,omitempty"`

	Accessible     bool   `json:"accessible"`
	RequiredAction string `json:"required_action,omitempty"` // "upgrade" | "purchase"
	PriceCredits   int64  `json:"price_credits,omitempty"`
	RequiredTier   string `json:"required_tier,omitempty"`

	// Only set when accessible.
	URL string `json:"url,omitempty"`
}

type MessageItemResponse struct {
	ID     string `json:"id"`
	Sender string `json:"sender_id"`
	Body   string `json:"body"`

	IsPPV        bool  `json:"is_ppv"`
	Locked       bool  `json:"locked"`
	PriceCredits int64 `json:"price_credits,omitempty"`

	// Attachments are hidden while a PPV message is locked.
	Media []string `json:"media,omitempty"`
}

type UnlockResultResponse struct {
	Unlocked        bool     `json:"unlocked"`
	Media           []string `json:"media"`
	NewBalance      int64    `json:"new_balance"`
	NewPaidCredits  int64    `json:"new_paid_credits"`
	NewBonusCredits int64    `json:"new_bonus_credits"`
}
