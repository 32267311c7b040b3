package request_models

type PurchaseSubscriptionRequest struct {
	CreatorSlug string `json:"creator_slug" binding:"required"`
	PlanCode    string `json:"plan_code" binding:"required"`
}
