package content_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/internal/repositories"
	"fanloft/internal/services"
)

var Module = fx.Provide(
	provideContentService, provideAccessService,
	provideMediaRepo, provideMessageRepo, provideUnlockRepo)

func provideMediaRepo(db *gorm.DB) repositories.MediaRepository {
	return repositories.NewMediaRepository(db)
}

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideUnlockRepo(db *gorm.DB) repositories.UnlockRepository {
	return repositories.NewUnlockRepository(db)
}

func provideAccessService(
	subscriptionRepo repositories.SubscriptionRepository,
	unlockRepo repositories.UnlockRepository,
) services.AccessServiceInterface {
	return services.NewAccessService(subscriptionRepo, unlockRepo)
}

func provideContentService(
	mediaRepo repositories.MediaRepository,
	messageRepo repositories.MessageRepository,
	unlockRepo repositories.UnlockRepository,
	accountRepo repositories.AccountRepository,
	creditRepo repositories.CreditRepository,
	accessService services.AccessServiceInterface,
	earningService services.EarningServiceInterface,
	logger zerolog.Logger,
) services.ContentServiceInterface {
	return services.NewContentService(mediaRepo, messageRepo, unlockRepo, accountRepo, creditRepo, accessService, earningService, logger)
}
