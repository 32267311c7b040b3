package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"
	"github.com/rs/zerolog"

	"fanloft/internal/gateway/coinpay"
	"fanloft/internal/models/db_models"
	"fanloft/internal/models/response_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string
	ReturnURL    string
	CancelURL    string
	ProviderName string // stored on PaymentIntent.Provider
}

// CryptoGateway abstracts the crypto charge provider.
type CryptoGateway interface {
	CreateCharge(ctx context.Context, req coinpay.CreateChargeRequest) (*coinpay.Charge, error)
	GetCharge(ctx context.Context, chargeID string) (*coinpay.Charge, error)
}

type PaymentServiceInterface interface {
	ListPackages(ctx context.Context) ([]response_models.CreditPackageResponse, error)

	// CreateCardCheckout opens a payOS checkout for a credit package.
	// The gateway call happens before any credits move; credits are
	// granted only on webhook confirmation.
	CreateCardCheckout(ctx context.Context, accountID uuid.UUID, packageCode string) (*response_models.CreateCheckoutResponse, error)
	HandleCardWebhook(c *gin.Context)

	CreateCryptoCharge(ctx context.Context, accountID uuid.UUID, packageCode, cryptoCurrency string) (*response_models.CryptoChargeResponse, error)
	HandleCryptoWebhook(c *gin.Context)

	// ConfirmCryptoCharge polls the gateway. An unconfirmed charge
	// returns ErrGatewayUnconfirmed and is safe to retry; a confirmed
	// one applies the grant idempotently.
	ConfirmCryptoCharge(ctx context.Context, accountID uuid.UUID, chargeID string) (*response_models.PaymentStatusResponse, error)
}

type paymentService struct {
	paymentRepo   repositories.PaymentRepository
	crypto        CryptoGateway
	cfg           PayOSConfig
	webhookSecret string
	logger        zerolog.Logger
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	crypto CryptoGateway,
	cfg PayOSConfig,
	cryptoWebhookSecret string,
	logger zerolog.Logger,
) (PaymentServiceInterface, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.ApiKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	return &paymentService{
		paymentRepo:   paymentRepo,
		crypto:        crypto,
		cfg:           cfg,
		webhookSecret: cryptoWebhookSecret,
		logger:        logger,
	}, nil
}

func (p *paymentService) ListPackages(ctx context.Context) ([]response_models.CreditPackageResponse, error) {
	packages, err := p.paymentRepo.ListPackages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CreditPackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, response_models.CreditPackageResponse{
			Code:         pkg.Code,
			Name:         pkg.Name,
			PriceMinor:   pkg.PriceMinor,
			Currency:     pkg.Currency,
			PaidCredits:  pkg.PaidCredits,
			BonusCredits: pkg.BonusCredits,
		})
	}
	return result, nil
}

// newOrderCode draws a payOS order code: positive, within a JS-safe
// integer, and wide enough that concurrent checkouts do not collide.
// The unique provider transaction id rejects the one-in-nine-quadrillion
// repeat.
func newOrderCode() int64 {
	return rand.Int63n(9_000_000_000_000_000) + 1
}

func (p *paymentService) CreateCardCheckout(ctx context.Context, accountID uuid.UUID, packageCode string) (*response_models.CreateCheckoutResponse, error) {
	pkg, err := p.paymentRepo.FindPackageByCode(ctx, packageCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}

	orderCode := newOrderCode()
	providerTxnID := fmt.Sprintf("payos:%d", orderCode)

	intent := &db_models.PaymentIntent{
		AccountID:     accountID,
		PackageID:     pkg.ID,
		AmountMinor:   pkg.PriceMinor,
		Currency:      strings.ToUpper(pkg.Currency),
		Status:        db_models.PaymentStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: providerTxnID,
	}
	if err := p.paymentRepo.CreateIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(pkg.PriceMinor),
		Items: []payos.Item{{
			Name:     pkg.Name,
			Price:    int(pkg.PriceMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Credits %s", pkg.Code),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.paymentRepo.MarkFailed(ctx, intent.ID.String())
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	p.logger.Info().
		Str("account_id", accountID.String()).
		Str("package", pkg.Code).
		Int64("order_code", orderCode).
		Msg("card checkout created")

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		AmountMinor:  pkg.PriceMinor,
		Currency:     intent.Currency,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleCardWebhook(c *gin.Context) {
	var body payos.WebhookType
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		p.logger.Warn().Err(err).Msg("webhook: invalid payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, err := payos.VerifyPaymentWebhookData(body)
	if err != nil {
		p.logger.Warn().Err(err).Msg("webhook: verification failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	// payOS sends order code 123 when confirming the webhook URL.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "webhook confirmed"})
		return
	}

	providerTxnID := fmt.Sprintf("payos:%d", data.OrderCode)

	intent, applied, err := p.paymentRepo.ApplyPaidIntent(c.Request.Context(), providerTxnID)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			// Ack unknown orders to stop the retry storm, but log for
			// investigation.
			p.logger.Error().Int64("order_code", data.OrderCode).Msg("webhook: intent not found")
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
			return
		}
		p.logger.Error().Err(err).Int64("order_code", data.OrderCode).Msg("webhook: apply failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	if applied {
		p.logger.Info().
			Str("account_id", intent.AccountID.String()).
			Int64("amount_minor", intent.AmountMinor).
			Msg("card payment applied")
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (p *paymentService) CreateCryptoCharge(ctx context.Context, accountID uuid.UUID, packageCode, cryptoCurrency string) (*response_models.CryptoChargeResponse, error) {
	pkg, err := p.paymentRepo.FindPackageByCode(ctx, packageCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}

	charge, err := p.crypto.CreateCharge(ctx, coinpay.CreateChargeRequest{
		AmountMinor:    pkg.PriceMinor,
		Currency:       strings.ToUpper(pkg.Currency),
		CryptoCurrency: cryptoCurrency,
		Reference:      accountID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("crypto create charge: %w", err)
	}

	intent := &db_models.PaymentIntent{
		AccountID:     accountID,
		PackageID:     pkg.ID,
		AmountMinor:   pkg.PriceMinor,
		Currency:      strings.ToUpper(pkg.Currency),
		Status:        db_models.PaymentStatusPending,
		Provider:      "coinpay",
		ProviderTxnID: "coinpay:" + charge.ID,
	}
	if err := p.paymentRepo.CreateIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	p.logger.Info().
		Str("account_id", accountID.String()).
		Str("package", pkg.Code).
		Str("charge_id", charge.ID).
		Msg("crypto charge created")

	return &response_models.CryptoChargeResponse{
		ChargeID:     charge.ID,
		AmountMinor:  pkg.PriceMinor,
		Currency:     intent.Currency,
		CryptoAmount: charge.CryptoAmount,
		PayAddress:   charge.PayAddress,
		PaymentURL:   charge.PaymentURL,
		ProviderName: "coinpay",
	}, nil
}

// HandleCryptoWebhook applies confirmed charges pushed by the gateway.
// Authentication is a shared secret header; the polling endpoint covers
// gateways that cannot reach us.
func (p *paymentService) HandleCryptoWebhook(c *gin.Context) {
	if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Coinpay-Secret")), []byte(p.webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook secret"})
		return
	}

	var body struct {
		ChargeID string `json:"charge_id"`
		Status   string `json:"status"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil || body.ChargeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	if body.Status != coinpay.StatusConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	_, applied, err := p.paymentRepo.ApplyPaidIntent(c.Request.Context(), "coinpay:"+body.ChargeID)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			p.logger.Error().Str("charge_id", body.ChargeID).Msg("crypto webhook: intent not found")
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
			return
		}
		p.logger.Error().Err(err).Str("charge_id", body.ChargeID).Msg("crypto webhook: apply failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	if applied {
		p.logger.Info().Str("charge_id", body.ChargeID).Msg("crypto payment applied")
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (p *paymentService) ConfirmCryptoCharge(ctx context.Context, accountID uuid.UUID, chargeID string) (*response_models.PaymentStatusResponse, error) {
	providerTxnID := "coinpay:" + chargeID

	intent, err := p.paymentRepo.FindByProviderTxnID(ctx, providerTxnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if intent == nil || intent.AccountID != accountID {
		return nil, utils.ErrRecordNotFound
	}

	if intent.Status != db_models.PaymentStatusPaid {
		charge, err := p.crypto.GetCharge(ctx, chargeID)
		if err != nil {
			// Timeouts and transport errors never grant; the caller
			// retries the confirmation check.
			return nil, utils.ErrGatewayUnconfirmed
		}
		if charge.Status != coinpay.StatusConfirmed {
			return nil, utils.ErrGatewayUnconfirmed
		}

		if intent, _, err = p.paymentRepo.ApplyPaidIntent(ctx, providerTxnID); err != nil {
			return nil, err
		}
	}

	p.logger.Info().
		Str("account_id", accountID.String()).
		Str("charge_id", chargeID).
		Msg("crypto payment confirmed")

	return &response_models.PaymentStatusResponse{
		ProviderTxnID: intent.ProviderTxnID,
		Status:        string(intent.Status),
		AmountMinor:   intent.AmountMinor,
		Currency:      intent.Currency,
	}, nil
}
