package controllers_fx

import (
	"go.uber.org/fx"

	"fanloft/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCreditsController),
	fx.Provide(controllers.NewContentController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewCreatorController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewPaymentController))
