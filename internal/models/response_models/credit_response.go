package response_models

type TransactionEntry struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Type      string `json:"type"`
	FromPaid  int64  `json:"from_paid,omitempty"`
	FromBonus int64  `json:"from_bonus,omitempty"`
	Reference string `json:"reference,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type CreditSummaryResponse struct {
	Balance      int64              `json:"balance"`
	PaidCredits  int64              `json:"paid_credits"`
	BonusCredits int64              `json:"bonus_credits"`
	Transactions []TransactionEntry `json:"transactions"`
}

type BalanceResponse struct {
	NewBalance      int64 `json:"new_balance"`
	NewPaidCredits  int64 `json:"new_paid_credits"`
	NewBonusCredits int64 `json:"new_bonus_credits"`
}
