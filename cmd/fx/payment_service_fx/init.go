package payment_service_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/config"
	"fanloft/internal/gateway/coinpay"
	"fanloft/internal/repositories"
	"fanloft/internal/services"
)

var Module = fx.Provide(
	providePaymentService, provideCryptoGateway, providePaymentRepo)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideCryptoGateway(cfg *config.Config) services.CryptoGateway {
	return coinpay.NewClient(cfg.CoinPay.BaseURL, cfg.CoinPay.APIKey)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepository,
	crypto services.CryptoGateway,
	cfg *config.Config,
	logger zerolog.Logger,
) (services.PaymentServiceInterface, error) {
	payosCfg := services.PayOSConfig{
		ClientID:     cfg.PayOS.ClientID,
		ApiKey:       cfg.PayOS.APIKey,
		ChecksumKey:  cfg.PayOS.ChecksumKey,
		ReturnURL:    cfg.PayOS.ReturnURL,
		CancelURL:    cfg.PayOS.CancelURL,
		ProviderName: "payos",
	}
	return services.NewPaymentService(paymentRepo, crypto, payosCfg, cfg.CoinPay.WebhookSecret, logger)
}
