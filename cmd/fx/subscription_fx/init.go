package subscription_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/internal/repositories"
	"fanloft/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, providePlanRepo, provideSubscriptionRepo)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	planRepo repositories.IPlanRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	creditRepo repositories.CreditRepository,
	earningService services.EarningServiceInterface,
	logger zerolog.Logger,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(planRepo, subscriptionRepo, accountRepo, creditRepo, earningService, logger)
}
