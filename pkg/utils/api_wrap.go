package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func respondErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// HandleServiceError maps domain errors to HTTP responses. Credit
// shortfalls and cooldowns include the numbers the UI needs to render
// "you need N more credits" / "wait N more hours".
func HandleServiceError(c *gin.Context, err error) {
	var shortErr *InsufficientCreditsError
	var coolErr *CooldownError
	var upgradeErr *UpgradeRequiredError

	switch {
	case errors.As(err, &shortErr):
		respondErrorData(c, http.StatusPaymentRequired, "Insufficient credits", gin.H{
			"required":  shortErr.Required,
			"balance":   shortErr.Balance,
			"shortfall": shortErr.Shortfall(),
		})
	case errors.Is(err, ErrInsufficientCredits):
		RespondError(c, http.StatusPaymentRequired, "Insufficient credits")
	case errors.Is(err, ErrAlreadyUnlocked):
		RespondError(c, http.StatusConflict, "Content already unlocked")
	case errors.As(err, &upgradeErr):
		respondErrorData(c, http.StatusForbidden, "Subscription upgrade required", gin.H{
			"required_tier": upgradeErr.Tier,
		})
	case errors.Is(err, ErrUpgradeRequired):
		RespondError(c, http.StatusForbidden, "Subscription upgrade required")
	case errors.As(err, &coolErr):
		respondErrorData(c, http.StatusBadRequest, "Payout cooldown active", gin.H{
			"retry_in_seconds": int64(coolErr.RetryIn.Seconds()),
		})
	case errors.Is(err, ErrPayoutCooldown):
		RespondError(c, http.StatusBadRequest, "Payout cooldown active")
	case errors.Is(err, ErrBelowMinimumPayout):
		RespondError(c, http.StatusBadRequest, "Pending balance below payout minimum")
	case errors.Is(err, ErrPayoutOutstanding):
		RespondError(c, http.StatusBadRequest, "A payout request is already pending")
	case errors.Is(err, ErrInvalidWallet):
		RespondError(c, http.StatusBadRequest, "Invalid wallet type or address")
	case errors.Is(err, ErrMissingIDDocument):
		RespondError(c, http.StatusBadRequest, "Identity document required")
	case errors.Is(err, ErrGatewayUnconfirmed):
		RespondError(c, http.StatusAccepted, "Payment not confirmed yet")
	case errors.Is(err, ErrContentNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrPackageNotFound),
		errors.Is(err, ErrCreatorNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
