package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/internal/models/request_models"
	"fanloft/internal/models/response_models"
	"fanloft/internal/repositories"
	mem "fanloft/pkg/memcache"
	"fanloft/pkg/monitoring"
	"fanloft/pkg/utils"
)

// PayoutConfig gates withdrawal of creator earnings.
type PayoutConfig struct {
	MinMinor     int64
	Cooldown     time.Duration
	DocRetention time.Duration
}

type PayoutServiceInterface interface {
	RequestPayout(ctx context.Context, creatorID uuid.UUID, req request_models.RequestPayoutRequest) (*response_models.PayoutRequestResponse, error)
	MarkPaid(ctx context.Context, requestID uuid.UUID) (*response_models.PayoutRequestResponse, error)
	EarningsSummary(ctx context.Context, creatorID uuid.UUID) (*response_models.EarningsSummaryResponse, error)
	ListRequests(ctx context.Context, creatorID uuid.UUID) ([]response_models.PayoutRequestResponse, error)
}

type PayoutService struct {
	payoutRepo     repositories.PayoutRepository
	earningService EarningServiceInterface
	documents      mem.DocumentStore
	cfg            PayoutConfig
	logger         zerolog.Logger
}

func NewPayoutService(
	payoutRepo repositories.PayoutRepository,
	earningService EarningServiceInterface,
	documents mem.DocumentStore,
	cfg PayoutConfig,
	logger zerolog.Logger,
) *PayoutService {
	return &PayoutService{
		payoutRepo:     payoutRepo,
		earningService: earningService,
		documents:      documents,
		cfg:            cfg,
		logger:         logger,
	}
}

func (s *PayoutService) RequestPayout(ctx context.Context, creatorID uuid.UUID, req request_models.RequestPayoutRequest) (*response_models.PayoutRequestResponse, error) {
	walletType := db_models.WalletType(req.WalletType)
	if walletType != db_models.WalletETH && walletType != db_models.WalletBTC {
		return nil, utils.ErrInvalidWallet
	}
	if req.WalletAddress == "" {
		return nil, utils.ErrInvalidWallet
	}
	if req.IDPhotoURL == "" {
		return nil, utils.ErrMissingIDDocument
	}

	request := &db_models.PayoutRequest{
		CreatorID:     creatorID,
		AmountMinor:   req.Amount,
		WalletType:    walletType,
		WalletAddress: req.WalletAddress,
		IDDocumentRef: req.IDPhotoURL,
	}

	if err := s.payoutRepo.CreateRequest(ctx, request, s.cfg.MinMinor, s.cfg.Cooldown); err != nil {
		monitoring.PayoutRequestsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// The document is only needed for manual verification; the
	// retention store drops it after the window.
	s.documents.Put(req.IDPhotoURL, creatorID.String(), s.cfg.DocRetention)

	monitoring.PayoutRequestsTotal.WithLabelValues("created").Inc()
	s.logger.Info().
		Str("creator_id", creatorID.String()).
		Int64("amount_minor", request.AmountMinor).
		Str("wallet", string(walletType)).
		Msg("payout requested")

	return toPayoutResponse(request), nil
}

func (s *PayoutService) MarkPaid(ctx context.Context, requestID uuid.UUID) (*response_models.PayoutRequestResponse, error) {
	request, err := s.payoutRepo.MarkPaid(ctx, requestID)
	if err != nil {
		return nil, err
	}

	monitoring.PayoutRequestsTotal.WithLabelValues("paid").Inc()
	s.logger.Info().
		Str("request_id", requestID.String()).
		Str("creator_id", request.CreatorID.String()).
		Int64("amount_minor", request.AmountMinor).
		Msg("payout marked paid")

	return toPayoutResponse(request), nil
}

func (s *PayoutService) EarningsSummary(ctx context.Context, creatorID uuid.UUID) (*response_models.EarningsSummaryResponse, error) {
	pending, err := s.earningService.PendingBalance(ctx, creatorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	earnings, err := s.earningService.ListByCreator(ctx, creatorID, 100)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.EarningEntry, 0, len(earnings))
	for _, e := range earnings {
		entries = append(entries, response_models.EarningEntry{
			ID:              e.ID.String(),
			SourceType:      string(e.SourceType),
			GrossMinor:      e.GrossMinor,
			CommissionBps:   e.CommissionBps,
			CommissionMinor: e.CommissionMinor,
			NetMinor:        e.NetMinor,
			Status:          string(e.Status),
			CreatedAt:       e.CreatedAt,
		})
	}

	return &response_models.EarningsSummaryResponse{
		PendingMinor: pending,
		Earnings:     entries,
	}, nil
}

func (s *PayoutService) ListRequests(ctx context.Context, creatorID uuid.UUID) ([]response_models.PayoutRequestResponse, error) {
	requests, err := s.payoutRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PayoutRequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toPayoutResponse(&requests[i]))
	}
	return result, nil
}

// RunRetentionJanitor purges expired identity-document references on a
// fixed tick until the context is canceled.
func (s *PayoutService) RunRetentionJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := s.documents.PurgeExpired(); purged > 0 {
				s.logger.Info().Int("purged", purged).Msg("identity documents purged")
			}
		}
	}
}

func toPayoutResponse(r *db_models.PayoutRequest) *response_models.PayoutRequestResponse {
	return &response_models.PayoutRequestResponse{
		ID:            r.ID.String(),
		AmountMinor:   r.AmountMinor,
		WalletType:    string(r.WalletType),
		WalletAddress: r.WalletAddress,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		PaidAt:        r.PaidAt,
	}
}
