package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fanloft/internal/models/request_models"
	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Start a card checkout
// @Description Creates a payment link for a credit package
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (ctl *PaymentController) CreateCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := ctl.paymentService.CreateCardCheckout(c.Request.Context(), userID, req.PackageCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created successfully")
}

// CardWebhook receives payOS payment notifications. Signature
// verification and the idempotent credit grant happen in the service.
func (ctl *PaymentController) CardWebhook(c *gin.Context) {
	ctl.paymentService.HandleCardWebhook(c)
}

// CreateCryptoCharge godoc
// @Summary Start a crypto payment
// @Description Creates a crypto charge for a credit package
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCryptoChargeRequest true "Charge payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/crypto [post]
func (ctl *PaymentController) CreateCryptoCharge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateCryptoChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	charge, err := ctl.paymentService.CreateCryptoCharge(c.Request.Context(), userID, req.PackageCode, req.CryptoCurrency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, charge, "Crypto charge created successfully")
}

// ConfirmCryptoCharge godoc
// @Summary Confirm a crypto payment
// @Description Polls the gateway; 202 until the charge confirms
// @Tags Payments
// @Produce json
// @Param chargeId path string true "Charge ID"
// @Success 200 {object} utils.APIResponse
// @Failure 202 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/crypto/{chargeId}/confirm [post]
func (ctl *PaymentController) ConfirmCryptoCharge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := ctl.paymentService.ConfirmCryptoCharge(c.Request.Context(), userID, c.Param("chargeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Payment confirmed")
}

// CryptoWebhook receives charge notifications from the crypto gateway.
func (ctl *PaymentController) CryptoWebhook(c *gin.Context) {
	ctl.paymentService.HandleCryptoWebhook(c)
}
