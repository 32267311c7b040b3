package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/internal/models/response_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/monitoring"
	"fanloft/pkg/utils"
)

type ContentServiceInterface interface {
	ListMedia(ctx context.Context, viewerID uuid.UUID, creatorSlug string, page, pageSize int) ([]response_models.MediaItemResponse, error)
	GetMedia(ctx context.Context, viewerID uuid.UUID, mediaID string) (*response_models.MediaItemResponse, error)

	// UnlockMedia is the check-then-act path: the read-only decision
	// is advisory; the debit, unlock record and earning commit in one
	// transaction that re-validates under the account row lock.
	UnlockMedia(ctx context.Context, viewerID uuid.UUID, mediaID string) (*response_models.UnlockResultResponse, error)

	// ListMessages returns the viewer's inbox; PPV attachments stay
	// hidden until unlocked.
	ListMessages(ctx context.Context, viewerID uuid.UUID, page, pageSize int) ([]response_models.MessageItemResponse, error)

	// UnlockMessage unlocks a PPV chat message; chat spends draw from
	// the paid pool only.
	UnlockMessage(ctx context.Context, viewerID uuid.UUID, messageID string) (*response_models.UnlockResultResponse, error)
}

type ContentService struct {
	mediaRepo      repositories.MediaRepository
	messageRepo    repositories.MessageRepository
	unlockRepo     repositories.UnlockRepository
	accountRepo    repositories.AccountRepository
	creditRepo     repositories.CreditRepository
	accessService  AccessServiceInterface
	earningService EarningServiceInterface
	logger         zerolog.Logger
}

func NewContentService(
	mediaRepo repositories.MediaRepository,
	messageRepo repositories.MessageRepository,
	unlockRepo repositories.UnlockRepository,
	accountRepo repositories.AccountRepository,
	creditRepo repositories.CreditRepository,
	accessService AccessServiceInterface,
	earningService EarningServiceInterface,
	logger zerolog.Logger,
) ContentServiceInterface {
	return &ContentService{
		mediaRepo:      mediaRepo,
		messageRepo:    messageRepo,
		unlockRepo:     unlockRepo,
		accountRepo:    accountRepo,
		creditRepo:     creditRepo,
		accessService:  accessService,
		earningService: earningService,
		logger:         logger,
	}
}

func (s *ContentService) ListMedia(ctx context.Context, viewerID uuid.UUID, creatorSlug string, page, pageSize int) ([]response_models.MediaItemResponse, error) {
	creator, err := s.accountRepo.FindBySlug(ctx, creatorSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrCreatorNotFound
	}

	items, err := s.mediaRepo.ListByCreator(ctx, creator.ID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MediaItemResponse, 0, len(items))
	for i := range items {
		decision, err := s.accessService.DecideMedia(ctx, viewerID, &items[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, toMediaItem(&items[i], decision))
	}
	return responses, nil
}

func (s *ContentService) GetMedia(ctx context.Context, viewerID uuid.UUID, mediaID string) (*response_models.MediaItemResponse, error) {
	media, err := s.mediaRepo.FindById(ctx, mediaID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if media == nil {
		return nil, utils.ErrContentNotFound
	}

	decision, err := s.accessService.DecideMedia(ctx, viewerID, media)
	if err != nil {
		return nil, err
	}
	item := toMediaItem(media, decision)
	return &item, nil
}

func (s *ContentService) UnlockMedia(ctx context.Context, viewerID uuid.UUID, mediaID string) (*response_models.UnlockResultResponse, error) {
	media, err := s.mediaRepo.FindById(ctx, mediaID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if media == nil {
		return nil, utils.ErrContentNotFound
	}

	decision, err := s.accessService.DecideMedia(ctx, viewerID, media)
	if err != nil {
		return nil, err
	}

	if decision.Allowed {
		return nil, utils.ErrAlreadyUnlocked
	}
	if decision.Action == ActionUpgrade {
		monitoring.UnlockAttemptsTotal.WithLabelValues("upgrade_required").Inc()
		return nil, &utils.UpgradeRequiredError{Tier: string(decision.RequiredTier)}
	}

	creator, err := s.accountRepo.FindById(ctx, media.CreatorID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrCreatorNotFound
	}

	earning := s.earningService.BuildEarning(creator, decision.PriceCredits, db_models.SourceMediaUnlock, uuid.Nil)

	result, err := s.creditRepo.Spend(ctx, repositories.SpendRequest{
		AccountID: viewerID,
		Amount:    decision.PriceCredits,
		Policy:    repositories.SpendCatalog,
		Type:      db_models.TxnMediaUnlock,
		Reference: media.ID.String(),
		Unlock: &db_models.UnlockRecord{
			AccountID:   viewerID,
			ContentType: db_models.ContentMedia,
			ContentID:   media.ID,
		},
		Earning: earning,
	})
	if err != nil {
		monitoring.UnlockAttemptsTotal.WithLabelValues("denied").Inc()
		return nil, err
	}

	monitoring.UnlockAttemptsTotal.WithLabelValues("ok").Inc()
	monitoring.CreditTransactionsTotal.WithLabelValues(string(db_models.TxnMediaUnlock)).Inc()
	s.logger.Info().
		Str("account_id", viewerID.String()).
		Str("media_id", media.ID.String()).
		Int64("price", decision.PriceCredits).
		Int64("from_bonus", result.FromBonus).
		Msg("media unlocked")

	return &response_models.UnlockResultResponse{
		Unlocked:        true,
		Media:           []string{media.URL},
		NewBalance:      result.PaidCredits + result.BonusCredits,
		NewPaidCredits:  result.PaidCredits,
		NewBonusCredits: result.BonusCredits,
	}, nil
}

func (s *ContentService) ListMessages(ctx context.Context, viewerID uuid.UUID, page, pageSize int) ([]response_models.MessageItemResponse, error) {
	msgs, err := s.messageRepo.ListForRecipient(ctx, viewerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MessageItemResponse, 0, len(msgs))
	for i := range msgs {
		msg := &msgs[i]
		item := response_models.MessageItemResponse{
			ID:     msg.ID.String(),
			Sender: msg.SenderID.String(),
			Body:   msg.Body,
			IsPPV:  msg.IsPPV,
		}

		unlocked := !msg.IsPPV
		if msg.IsPPV {
			record, err := s.unlockRepo.Find(ctx, viewerID, db_models.ContentMessage, msg.ID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			unlocked = record != nil
		}

		if unlocked {
			item.Media = []string(msg.MediaURLs)
		} else {
			item.Locked = true
			item.PriceCredits = msg.PriceCredits
		}
		responses = append(responses, item)
	}
	return responses, nil
}

func (s *ContentService) UnlockMessage(ctx context.Context, viewerID uuid.UUID, messageID string) (*response_models.UnlockResultResponse, error) {
	msg, err := s.messageRepo.FindById(ctx, messageID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if msg == nil || msg.RecipientID != viewerID {
		return nil, utils.ErrContentNotFound
	}

	if !msg.IsPPV {
		return nil, utils.ErrAlreadyUnlocked
	}

	creator, err := s.accountRepo.FindById(ctx, msg.SenderID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrCreatorNotFound
	}

	earning := s.earningService.BuildEarning(creator, msg.PriceCredits, db_models.SourcePPVMessage, uuid.Nil)

	result, err := s.creditRepo.Spend(ctx, repositories.SpendRequest{
		AccountID: viewerID,
		Amount:    msg.PriceCredits,
		Policy:    repositories.SpendPaidOnly,
		Type:      db_models.TxnPPVMessage,
		Reference: msg.ID.String(),
		Unlock: &db_models.UnlockRecord{
			AccountID:   viewerID,
			ContentType: db_models.ContentMessage,
			ContentID:   msg.ID,
		},
		Earning: earning,
	})
	if err != nil {
		monitoring.UnlockAttemptsTotal.WithLabelValues("denied").Inc()
		return nil, err
	}

	monitoring.UnlockAttemptsTotal.WithLabelValues("ok").Inc()
	monitoring.CreditTransactionsTotal.WithLabelValues(string(db_models.TxnPPVMessage)).Inc()
	s.logger.Info().
		Str("account_id", viewerID.String()).
		Str("message_id", msg.ID.String()).
		Int64("price", msg.PriceCredits).
		Msg("ppv message unlocked")

	return &response_models.UnlockResultResponse{
		Unlocked:        true,
		Media:           []string(msg.MediaURLs),
		NewBalance:      result.PaidCredits + result.BonusCredits,
		NewPaidCredits:  result.PaidCredits,
		NewBonusCredits: result.BonusCredits,
	}, nil
}

func toMediaItem(m *db_models.Media, decision AccessDecision) response_models.MediaItemResponse {
	item := response_models.MediaItemResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		ThumbnailURL: m.ThumbnailURL,
		Tags:         []string(m.Tags),
		Accessible:   decision.Allowed,
	}

	if decision.Allowed {
		item.URL = m.URL
		return item
	}

	item.RequiredAction = string(decision.Action)
	item.PriceCredits = decision.PriceCredits
	item.RequiredTier = string(decision.RequiredTier)
	return item
}
