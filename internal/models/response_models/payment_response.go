package response_models

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	AmountMinor  int64  `json:"amount_minor"`
	Currency     string `json:"currency"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider"`
}

type CryptoChargeResponse struct {
	ChargeID     string `json:"charge_id"`
	AmountMinor  int64  `json:"amount_minor"`
	Currency     string `json:"currency"`
	CryptoAmount string `json:"crypto_amount"`
	PayAddress   string `json:"pay_address"`
	PaymentURL   string `json:"payment_url,omitempty"`
	ProviderName string `json:"provider"`
}

type PaymentStatusResponse struct {
	ProviderTxnID string `json:"provider_txn_id"`
	Status        string `json:"status"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
}

type CreditPackageResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	PriceMinor   int64  `json:"price_minor"`
	Currency     string `json:"currency"`
	PaidCredits  int64  `json:"paid_credits"`
	BonusCredits int64  `json:"bonus_credits"`
}
