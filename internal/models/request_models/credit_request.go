package request_models

type AdminGrantRequest struct {
	CreditGrant int64  `json:"credit_grant" binding:"required,gt=0"`
	CreditType  string `json:"credit_type" binding:"required,oneof=PAID BONUS"`
}

type TipRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
