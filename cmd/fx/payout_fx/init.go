package payout_fx

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/config"
	"fanloft/internal/repositories"
	"fanloft/internal/services"
	mem "fanloft/pkg/memcache"
)

var Module = fx.Provide(
	providePayoutService, providePayoutServiceInterface, providePayoutRepo)

func providePayoutRepo(db *gorm.DB) repositories.PayoutRepository {
	return repositories.NewPayoutRepository(db)
}

func providePayoutService(
	payoutRepo repositories.PayoutRepository,
	earningService services.EarningServiceInterface,
	documents mem.DocumentStore,
	cfg *config.Config,
	logger zerolog.Logger,
) *services.PayoutService {
	payoutCfg := services.PayoutConfig{
		MinMinor:     cfg.Ledger.MinPayoutMinor,
		Cooldown:     time.Duration(cfg.Ledger.PayoutCooldownHours) * time.Hour,
		DocRetention: time.Duration(cfg.Ledger.DocRetentionHours) * time.Hour,
	}
	return services.NewPayoutService(payoutRepo, earningService, documents, payoutCfg, logger)
}

func providePayoutServiceInterface(svc *services.PayoutService) services.PayoutServiceInterface {
	return svc
}
