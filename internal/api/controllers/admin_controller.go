package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fanloft/internal/models/request_models"
	"fanloft/internal/repositories"
	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type AdminController struct {
	creditService services.CreditServiceInterface
	payoutService services.PayoutServiceInterface
}

func NewAdminController(
	creditService services.CreditServiceInterface,
	payoutService services.PayoutServiceInterface,
) *AdminController {
	return &AdminController{
		creditService: creditService,
		payoutService: payoutService,
	}
}

// GrantCredits godoc
// @Summary Grant credits to an account
// @Description Adds credits to the paid or bonus pool of any account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.AdminGrantRequest true "Grant payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id} [patch]
func (ctl *AdminController) GrantCredits(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req request_models.AdminGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pool := repositories.PoolPaid
	if req.CreditType == "BONUS" {
		pool = repositories.PoolBonus
	}

	balance, err := ctl.creditService.AdminGrant(c.Request.Context(), accountID, req.CreditGrant, pool)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, balance, "Credits granted successfully")
}

// MarkPayoutPaid godoc
// @Summary Mark a payout request as paid
// @Description Settles the request and its covered earnings
// @Tags Admin
// @Produce json
// @Param id path string true "Payout request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/payouts/{id}/paid [post]
func (ctl *AdminController) MarkPayoutPaid(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid payout request id")
		return
	}

	result, err := ctl.payoutService.MarkPaid(c.Request.Context(), requestID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Payout marked as paid")
}
