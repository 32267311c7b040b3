package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fanloft/internal/models/request_models"
	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type CreatorController struct {
	creditService services.CreditServiceInterface
	payoutService services.PayoutServiceInterface
}

func NewCreatorController(
	creditService services.CreditServiceInterface,
	payoutService services.PayoutServiceInterface,
) *CreatorController {
	return &CreatorController{
		creditService: creditService,
		payoutService: payoutService,
	}
}

// Tip godoc
// @Summary Tip a creator
// @Description Moves paid credits from the fan to the creator's earnings
// @Tags Creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Param request body request_models.TipRequest true "Tip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /creators/{id}/tip [post]
func (ctl *CreatorController) Tip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid creator id")
		return
	}

	var req request_models.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	balance, err := ctl.creditService.Tip(c.Request.Context(), userID, creatorID, req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, balance, "Tip sent successfully")
}

// Earnings godoc
// @Summary Get earnings summary
// @Description Pending balance and recent earning entries
// @Tags Creators
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /creator/earnings [get]
func (ctl *CreatorController) Earnings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := ctl.payoutService.EarningsSummary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Earnings fetched successfully")
}

// RequestPayout godoc
// @Summary Request a payout
// @Description Creates a payout request against the pending balance
// @Tags Creators
// @Accept json
// @Produce json
// @Param request body request_models.RequestPayoutRequest true "Payout payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /creator/payout-request [post]
func (ctl *CreatorController) RequestPayout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ctl.payoutService.RequestPayout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Payout requested successfully")
}

// ListPayouts godoc
// @Summary List payout requests
// @Tags Creators
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /creator/payouts [get]
func (ctl *CreatorController) ListPayouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requests, err := ctl.payoutService.ListRequests(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Payout requests fetched successfully")
}
