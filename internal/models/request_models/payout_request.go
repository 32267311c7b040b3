package request_models

type RequestPayoutRequest struct {
	WalletType    string `json:"wallet_type" binding:"required,oneof=ETH BTC"`
	WalletAddress string `json:"wallet_address" binding:"required"`
	IDPhotoURL    string `json:"id_photo_url" binding:"required"`

	// Optional; zero withdraws the full pending balance.
	Amount int64 `json:"amount" binding:"omitempty,gt=0"`
}
