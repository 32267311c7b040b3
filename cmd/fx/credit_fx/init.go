package credit_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/internal/repositories"
	"fanloft/internal/services"
)

var Module = fx.Provide(
	provideCreditService, provideCreditRepo)

func provideCreditRepo(db *gorm.DB) repositories.CreditRepository {
	return repositories.NewCreditRepository(db)
}

func provideCreditService(
	creditRepo repositories.CreditRepository,
	accountRepo repositories.AccountRepository,
	earningService services.EarningServiceInterface,
	logger zerolog.Logger,
) services.CreditServiceInterface {
	return services.NewCreditService(creditRepo, accountRepo, earningService, logger)
}
