package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fanloft/internal/services"
	"fanloft/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// ListMedia godoc
// @Summary List a creator's media
// @Description Media items with the viewer's access decision embedded
// @Tags Content
// @Produce json
// @Param creator query string true "Creator slug"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media [get]
func (ctl *ContentController) ListMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	creatorSlug := c.Query("creator")
	if creatorSlug == "" {
		utils.RespondError(c, http.StatusBadRequest, "creator query parameter is required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, err := ctl.contentService.ListMedia(c.Request.Context(), userID, creatorSlug, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Media fetched successfully")
}

// GetMedia godoc
// @Summary Get a media item
// @Description Single media item with the viewer's access decision
// @Tags Content
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{id} [get]
func (ctl *ContentController) GetMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := ctl.contentService.GetMedia(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Media fetched successfully")
}

// UnlockMedia godoc
// @Summary Unlock a pay-per-view media item
// @Description Debits credits and grants permanent access
// @Tags Content
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{id}/unlock [post]
func (ctl *ContentController) UnlockMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ctl.contentService.UnlockMedia(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Media unlocked successfully")
}

// ListMessages godoc
// @Summary List received messages
// @Description Inbox with PPV attachments hidden until unlocked
// @Tags Content
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages [get]
func (ctl *ContentController) ListMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	messages, err := ctl.contentService.ListMessages(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// UnlockMessage godoc
// @Summary Unlock a pay-per-view message
// @Description Debits paid credits and reveals the message attachments
// @Tags Content
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/unlock [post]
func (ctl *ContentController) UnlockMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ctl.contentService.UnlockMessage(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Message unlocked successfully")
}
