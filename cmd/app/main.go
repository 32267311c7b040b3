package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"fanloft/cmd/fx/account_fx"
	"fanloft/cmd/fx/content_fx"
	"fanloft/cmd/fx/controllers_fx"
	"fanloft/cmd/fx/credit_fx"
	"fanloft/cmd/fx/db_fx"
	"fanloft/cmd/fx/earning_fx"
	"fanloft/cmd/fx/memcache_fx"
	"fanloft/cmd/fx/payment_service_fx"
	"fanloft/cmd/fx/payout_fx"
	"fanloft/cmd/fx/subscription_fx"
	"fanloft/config"
	"fanloft/internal/api/controllers"
	"fanloft/internal/services"
	"fanloft/pkg/middleware"
	"fanloft/pkg/utils"
)

func main() {
	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		earning_fx.Module,
		credit_fx.Module,
		content_fx.Module,
		subscription_fx.Module,
		payout_fx.Module,
		payment_service_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartRetentionJanitor),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("port", cfg.Server.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

// StartRetentionJanitor runs the identity-document purge loop for the
// lifetime of the app.
func StartRetentionJanitor(lc fx.Lifecycle, payoutService *services.PayoutService) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go payoutService.RunRetentionJanitor(ctx, time.Hour)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokens *utils.TokenIssuer,
	accountController *controllers.AccountController,
	creditsController *controllers.CreditsController,
	contentController *controllers.ContentController,
	subscriptionController *controllers.SubscriptionController,
	creatorController *controllers.CreatorController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) *gin.Engine {

	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r, tokens,
		accountController, creditsController, contentController,
		subscriptionController, creatorController, adminController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenIssuer,
	accountController *controllers.AccountController,
	creditsController *controllers.CreditsController,
	contentController *controllers.ContentController,
	subscriptionController *controllers.SubscriptionController,
	creatorController *controllers.CreatorController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) {

	auth := middleware.JWTAuthMiddleware(tokens)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	credits := r.Group("/credits")
	credits.GET("", auth, creditsController.GetBalance)
	credits.GET("/packages", creditsController.ListPackages)

	payments := r.Group("/payments")
	payments.POST("/checkout", auth, paymentController.CreateCheckout)
	payments.POST("/webhook", paymentController.CardWebhook)
	payments.POST("/crypto", auth, paymentController.CreateCryptoCharge)
	payments.POST("/crypto/webhook", paymentController.CryptoWebhook)
	payments.POST("/crypto/:chargeId/confirm", auth, paymentController.ConfirmCryptoCharge)

	media := r.Group("/media", auth)
	media.GET("", contentController.ListMedia)
	media.GET("/:id", contentController.GetMedia)
	media.POST("/:id/unlock", contentController.UnlockMedia)

	messages := r.Group("/messages", auth)
	messages.GET("", contentController.ListMessages)
	messages.POST("/:id/unlock", contentController.UnlockMessage)

	r.GET("/plans/:creatorSlug", subscriptionController.ListPlans)

	subscriptions := r.Group("/subscriptions", auth)
	subscriptions.GET("", subscriptionController.ListMine)
	subscriptions.POST("/purchase", subscriptionController.Purchase)
	subscriptions.GET("/:creatorSlug", subscriptionController.Status)

	creators := r.Group("/creators", auth)
	creators.POST("/:id/tip", creatorController.Tip)

	creator := r.Group("/creator", auth, middleware.RoleMiddleware("creator"))
	creator.GET("/earnings", creatorController.Earnings)
	creator.POST("/payout-request", creatorController.RequestPayout)
	creator.GET("/payouts", creatorController.ListPayouts)

	admin := r.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	admin.GET("/users", accountController.GetAllAccounts)
	admin.PATCH("/users/:id", adminController.GrantCredits)
	admin.POST("/payouts/:id/paid", adminController.MarkPayoutPaid)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
