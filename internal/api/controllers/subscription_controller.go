package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fanloft/internal/models/request_models"
	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// ListPlans godoc
// @Summary List a creator's subscription plans
// @Tags Subscriptions
// @Produce json
// @Param creatorSlug path string true "Creator slug"
// @Success 200 {object} utils.APIResponse
// @Router /plans/{creatorSlug} [get]
func (ctl *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := ctl.subscriptionService.ListPlans(c.Request.Context(), c.Param("creatorSlug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// Purchase godoc
// @Summary Purchase or renew a subscription
// @Description Debits paid credits; renewing early extends the current period
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.PurchaseSubscriptionRequest true "Purchase payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/purchase [post]
func (ctl *SubscriptionController) Purchase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	status, err := ctl.subscriptionService.Purchase(c.Request.Context(), userID, req.CreatorSlug, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Subscription purchased successfully")
}

// ListMine godoc
// @Summary List my subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (ctl *SubscriptionController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subs, err := ctl.subscriptionService.ListMine(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

// Status godoc
// @Summary Get subscription status for a creator
// @Tags Subscriptions
// @Produce json
// @Param creatorSlug path string true "Creator slug"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{creatorSlug} [get]
func (ctl *SubscriptionController) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := ctl.subscriptionService.StatusFor(c.Request.Context(), userID, c.Param("creatorSlug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Subscription status fetched successfully")
}
