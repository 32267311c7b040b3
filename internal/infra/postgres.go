package infra

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fanloft/config"
	"fanloft/internal/models/db_models"
)

// InitPostgresql opens the connection pool. TranslateError is on so
// unique violations surface as gorm.ErrDuplicatedKey, which the
// earning and unlock paths rely on.
func InitPostgresql(cfg *config.Config) *gorm.DB {
	dsn := cfg.Database.GetDSN()

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := AutoMigrate(connectionPool); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.CreditAccount{},
		&db_models.CreditTransaction{},
		&db_models.Media{},
		&db_models.Message{},
		&db_models.UnlockRecord{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.CreditPackage{},
		&db_models.PaymentIntent{},
		&db_models.CreatorEarning{},
		&db_models.PayoutRequest{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
}
