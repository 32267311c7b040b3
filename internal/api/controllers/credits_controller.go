package controllers

import (
	"github.com/gin-gonic/gin"

	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type CreditsController struct {
	creditService  services.CreditServiceInterface
	paymentService services.PaymentServiceInterface
}

func NewCreditsController(
	creditService services.CreditServiceInterface,
	paymentService services.PaymentServiceInterface,
) *CreditsController {
	return &CreditsController{
		creditService:  creditService,
		paymentService: paymentService,
	}
}

// GetBalance godoc
// @Summary Get credit balance
// @Description Current paid/bonus pools and recent transactions
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits [get]
func (ctl *CreditsController) GetBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := ctl.creditService.Balance(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Balance fetched successfully")
}

// ListPackages godoc
// @Summary List credit packages
// @Description Purchasable credit packages with bonus amounts
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /credits/packages [get]
func (ctl *CreditsController) ListPackages(c *gin.Context) {
	packages, err := ctl.paymentService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}
