package db_fx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fanloft/config"
	"fanloft/internal/infra"
	"fanloft/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideDB, provideTokenIssuer)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
}
