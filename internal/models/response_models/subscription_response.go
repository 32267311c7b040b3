package response_models

type SubscriptionPlan struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Tier         string   `json:"tier"`
	Period       string   `json:"period"`
	PriceCredits int64    `json:"price_credits"`
	TrialDays    int32    `json:"trial_days"`
	Features     []string `json:"features,omitempty"`
}

type SubscriptionStatusResponse struct {
	CreatorSlug string `json:"creator_slug"`
	PlanCode    string `json:"plan_code"`
	Tier        string `json:"tier"`
	Status      string `json:"status"`
	StartsAt    int64  `json:"starts_at"`
	EndsAt      int64  `json:"ends_at"`
	AutoRenew   bool   `json:"auto_renew"`

	NewBalance int64 `json:"new_balance,omitempty"`
}
