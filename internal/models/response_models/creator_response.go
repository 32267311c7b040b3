package response_models

type EarningEntry struct {
	ID              string `json:"id"`
	SourceType      string `json:"source_type"`
	GrossMinor      int64  `json:"gross_minor"`
	CommissionBps   int64  `json:"commission_bps"`
	CommissionMinor int64  `json:"commission_minor"`
	NetMinor        int64  `json:"net_minor"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"created_at"`
}

type EarningsSummaryResponse struct {
	PendingMinor int64          `json:"pending_minor"`
	Earnings     []EarningEntry `json:"earnings"`
}

type PayoutRequestResponse struct {
	ID            string `json:"id"`
	AmountMinor   int64  `json:"amount_minor"`
	WalletType    string `json:"wallet_type"`
	WalletAddress string `json:"wallet_address"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
	PaidAt        *int64 `json:"paid_at,omitempty"`
}
