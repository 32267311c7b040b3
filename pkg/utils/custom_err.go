package utils

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyUnlocked     = errors.New("content already unlocked")
	ErrUpgradeRequired     = errors.New("subscription upgrade required")
	ErrContentNotFound     = errors.New("content not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrPackageNotFound     = errors.New("credit package not found")
	ErrCreatorNotFound     = errors.New("creator not found")

	ErrBelowMinimumPayout = errors.New("pending balance below payout minimum")
	ErrPayoutCooldown     = errors.New("payout cooldown active")
	ErrPayoutOutstanding  = errors.New("a payout request is already pending")
	ErrInvalidWallet      = errors.New("invalid wallet")
	ErrMissingIDDocument  = errors.New("identity document required")

	ErrDuplicateEarning   = errors.New("earning already recorded")
	ErrGatewayUnconfirmed = errors.New("payment not confirmed by gateway")
)

// InsufficientCreditsError carries the exact shortfall so the caller
// can offer a top-up. errors.Is(err, ErrInsufficientCredits) matches.
type InsufficientCreditsError struct {
	Required int64
	Balance  int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: need %d, have %d", e.Required, e.Balance)
}

func (e *InsufficientCreditsError) Unwrap() error { return ErrInsufficientCredits }

func (e *InsufficientCreditsError) Shortfall() int64 { return e.Required - e.Balance }

// UpgradeRequiredError carries the subscription tier that unlocks the
// content, so a basic-gated denial does not read as a VIP wall.
// errors.Is(err, ErrUpgradeRequired) matches.
type UpgradeRequiredError struct {
	Tier string
}

func (e *UpgradeRequiredError) Error() string {
	return fmt.Sprintf("%s subscription required", e.Tier)
}

func (e *UpgradeRequiredError) Unwrap() error { return ErrUpgradeRequired }

// CooldownError reports how long the creator must wait before the next
// payout request. errors.Is(err, ErrPayoutCooldown) matches.
type CooldownError struct {
	RetryIn time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("payout cooldown active: retry in %s", e.RetryIn.Round(time.Minute))
}

func (e *CooldownError) Unwrap() error { return ErrPayoutCooldown }
