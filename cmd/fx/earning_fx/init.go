package earning_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/config"
	"fanloft/internal/repositories"
	"fanloft/internal/services"
)

var Module = fx.Provide(
	provideEarningService, provideEarningRepo)

func provideEarningRepo(db *gorm.DB) repositories.EarningRepository {
	return repositories.NewEarningRepository(db)
}

func provideEarningService(earningRepo repositories.EarningRepository, cfg *config.Config) services.EarningServiceInterface {
	rule := services.CommissionRule{
		FlatBps:   cfg.Ledger.CommissionBps,
		GraceDays: cfg.Ledger.GraceDays,
	}
	return services.NewEarningService(earningRepo, rule)
}
