package request_models

type CreateCheckoutRequest struct {
	PackageCode string `json:"package_code" binding:"required"`
}

type CreateCryptoChargeRequest struct {
	PackageCode    string `json:"package_code" binding:"required"`
	CryptoCurrency string `json:"crypto_currency" binding:"required,oneof=ETH BTC USDT"`
}
