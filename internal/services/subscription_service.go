package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/internal/models/response_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/monitoring"
	"fanloft/pkg/utils"
)

type SubscriptionServiceInterface interface {
	ListPlans(ctx context.Context, creatorSlug string) ([]response_models.SubscriptionPlan, error)

	// Purchase buys or renews a subscription with paid credits. The
	// debit, the subscription row and the creator earning commit in
	// one transaction.
	Purchase(ctx context.Context, accountID uuid.UUID, creatorSlug, planCode string) (*response_models.SubscriptionStatusResponse, error)

	StatusFor(ctx context.Context, accountID uuid.UUID, creatorSlug string) (*response_models.SubscriptionStatusResponse, error)

	// ListMine returns the account's subscription history, newest first.
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionStatusResponse, error)
}

type SubscriptionService struct {
	planRepo         repositories.IPlanRepository
	subscriptionRepo repositories.SubscriptionRepository
	accountRepo      repositories.AccountRepository
	creditRepo       repositories.CreditRepository
	earningService   EarningServiceInterface
	logger           zerolog.Logger
}

func NewSubscriptionService(
	planRepo repositories.IPlanRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	creditRepo repositories.CreditRepository,
	earningService EarningServiceInterface,
	logger zerolog.Logger,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		creditRepo:       creditRepo,
		earningService:   earningService,
		logger:           logger,
	}
}

func (s *SubscriptionService) ListPlans(ctx context.Context, creatorSlug string) ([]response_models.SubscriptionPlan, error) {
	creator, err := s.accountRepo.FindBySlug(ctx, creatorSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrCreatorNotFound
	}

	plans, err := s.planRepo.ListActiveByCreator(ctx, creator.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, p := range plans {
		result = append(result, response_models.SubscriptionPlan{
			ID:           p.ID.String(),
			Code:         p.Code,
			Name:         p.Name,
			Description:  p.Description,
			Tier:         string(p.Tier),
			Period:       string(p.Period),
			PriceCredits: p.PriceCredits,
			TrialDays:    p.TrialDays,
		})
	}
	return result, nil
}

// periodWindow computes the billing window of a new subscription. An
// active auto-renewing subscription extends from its current EndsAt
// rather than from now, so a fan renewing early loses nothing.
func periodWindow(current *db_models.Subscription, period db_models.BillingPeriod, now time.Time) (startsAt, endsAt int64) {
	starts := now
	if current != nil && current.Status == db_models.SubStatusActive && current.AutoRenew && current.EndsAt > now.Unix() {
		starts = time.Unix(current.EndsAt, 0)
	}

	var ends time.Time
	switch period {
	case db_models.PeriodYear:
		ends = starts.AddDate(1, 0, 0)
	default:
		ends = starts.AddDate(0, 1, 0)
	}
	return starts.Unix(), ends.Unix()
}

func (s *SubscriptionService) Purchase(ctx context.Context, accountID uuid.UUID, creatorSlug, planCode string) (*response_models.SubscriptionStatusResponse, error) {
	creator, err := s.accountRepo.FindBySlug(ctx, creatorSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil || creator.Role != db_models.RoleCreator {
		return nil, utils.ErrCreatorNotFound
	}

	plan, err := s.planRepo.GetPlanByCode(ctx, creator.ID, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	now := time.Now()
	current, err := s.subscriptionRepo.ActiveFor(ctx, accountID, creator.ID, now.Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	startsAt, endsAt := periodWindow(current, plan.Period, now)

	sub := &db_models.Subscription{
		AccountID: accountID,
		CreatorID: creator.ID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		AutoRenew: true,
	}
	sub.ID = uuid.New()

	earning := s.earningService.BuildEarning(creator, plan.PriceCredits, db_models.SourceSubscription, sub.ID)

	result, err := s.creditRepo.Spend(ctx, repositories.SpendRequest{
		AccountID:    accountID,
		Amount:       plan.PriceCredits,
		Policy:       repositories.SpendPaidOnly,
		Type:         db_models.TxnSubscription,
		Reference:    plan.ID.String(),
		Subscription: sub,
		Earning:      earning,
	})
	if err != nil {
		return nil, err
	}

	monitoring.CreditTransactionsTotal.WithLabelValues(string(db_models.TxnSubscription)).Inc()
	s.logger.Info().
		Str("account_id", accountID.String()).
		Str("creator", creatorSlug).
		Str("plan", planCode).
		Int64("price", plan.PriceCredits).
		Msg("subscription purchased")

	return &response_models.SubscriptionStatusResponse{
		CreatorSlug: creatorSlug,
		PlanCode:    plan.Code,
		Tier:        string(plan.Tier),
		Status:      string(sub.Status),
		StartsAt:    sub.StartsAt,
		EndsAt:      sub.EndsAt,
		AutoRenew:   sub.AutoRenew,
		NewBalance:  result.PaidCredits + result.BonusCredits,
	}, nil
}

func (s *SubscriptionService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionStatusResponse, error) {
	subs, err := s.subscriptionRepo.ListForAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionStatusResponse, 0, len(subs))
	for i := range subs {
		sub := &subs[i]
		entry := response_models.SubscriptionStatusResponse{
			PlanCode:  sub.Plan.Code,
			Tier:      string(sub.Plan.Tier),
			Status:    string(sub.Status),
			StartsAt:  sub.StartsAt,
			EndsAt:    sub.EndsAt,
			AutoRenew: sub.AutoRenew,
		}
		if sub.Creator.Slug != nil {
			entry.CreatorSlug = *sub.Creator.Slug
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *SubscriptionService) StatusFor(ctx context.Context, accountID uuid.UUID, creatorSlug string) (*response_models.SubscriptionStatusResponse, error) {
	creator, err := s.accountRepo.FindBySlug(ctx, creatorSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrCreatorNotFound
	}

	sub, err := s.subscriptionRepo.ActiveFor(ctx, accountID, creator.ID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrRecordNotFound
	}

	return &response_models.SubscriptionStatusResponse{
		CreatorSlug: creatorSlug,
		PlanCode:    sub.Plan.Code,
		Tier:        string(sub.Plan.Tier),
		Status:      string(sub.Status),
		StartsAt:    sub.StartsAt,
		EndsAt:      sub.EndsAt,
		AutoRenew:   sub.AutoRenew,
	}, nil
}
