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

type CreditServiceInterface interface {
	Balance(ctx context.Context, accountID uuid.UUID) (*response_models.CreditSummaryResponse, error)
	AdminGrant(ctx context.Context, accountID uuid.UUID, amount int64, pool repositories.CreditPool) (*response_models.BalanceResponse, error)
	Tip(ctx context.Context, accountID, creatorID uuid.UUID, amount int64) (*response_models.BalanceResponse, error)
}

type CreditService struct {
	creditRepo     repositories.CreditRepository
	accountRepo    repositories.AccountRepository
	earningService EarningServiceInterface
	logger         zerolog.Logger
}

func NewCreditService(
	creditRepo repositories.CreditRepository,
	accountRepo repositories.AccountRepository,
	earningService EarningServiceInterface,
	logger zerolog.Logger,
) CreditServiceInterface {
	return &CreditService{
		creditRepo:     creditRepo,
		accountRepo:    accountRepo,
		earningService: earningService,
		logger:         logger,
	}
}

func (s *CreditService) Balance(ctx context.Context, accountID uuid.UUID) (*response_models.CreditSummaryResponse, error) {
	account, err := s.creditRepo.GetOrCreateAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	txns, err := s.creditRepo.ListTransactions(ctx, accountID, 50)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.TransactionEntry, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, response_models.TransactionEntry{
			ID:        t.ID.String(),
			Amount:    t.Amount,
			Type:      string(t.Type),
			FromPaid:  t.FromPaid,
			FromBonus: t.FromBonus,
			Reference: t.Reference,
			CreatedAt: t.CreatedAt,
		})
	}

	return &response_models.CreditSummaryResponse{
		Balance:      account.TotalCredits(),
		PaidCredits:  account.PaidCredits,
		BonusCredits: account.BonusCredits,
		Transactions: entries,
	}, nil
}

func (s *CreditService) AdminGrant(ctx context.Context, accountID uuid.UUID, amount int64, pool repositories.CreditPool) (*response_models.BalanceResponse, error) {
	target, err := s.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrAccountNotFound
	}

	account, err := s.creditRepo.Grant(ctx, accountID, amount, pool, db_models.TxnAdminGrant, "admin")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	monitoring.CreditTransactionsTotal.WithLabelValues(string(db_models.TxnAdminGrant)).Inc()
	s.logger.Info().
		Str("account_id", accountID.String()).
		Int64("amount", amount).
		Str("pool", string(pool)).
		Msg("admin credit grant")

	return &response_models.BalanceResponse{
		NewBalance:      account.TotalCredits(),
		NewPaidCredits:  account.PaidCredits,
		NewBonusCredits: account.BonusCredits,
	}, nil
}

// Tip moves paid credits from a fan to a creator's pending earnings.
// Bonus credits never apply to tips.
func (s *CreditService) Tip(ctx context.Context, accountID, creatorID uuid.UUID, amount int64) (*response_models.BalanceResponse, error) {
	creator, err := s.accountRepo.FindById(ctx, creatorID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil || creator.Role != db_models.RoleCreator {
		return nil, utils.ErrCreatorNotFound
	}

	earning := s.earningService.BuildEarning(creator, amount, db_models.SourceTip, uuid.Nil)

	result, err := s.creditRepo.Spend(ctx, repositories.SpendRequest{
		AccountID: accountID,
		Amount:    amount,
		Policy:    repositories.SpendPaidOnly,
		Type:      db_models.TxnTip,
		Reference: creatorID.String(),
		Earning:   earning,
	})
	if err != nil {
		return nil, err
	}

	monitoring.CreditTransactionsTotal.WithLabelValues(string(db_models.TxnTip)).Inc()
	s.logger.Info().
		Str("account_id", accountID.String()).
		Str("creator_id", creatorID.String()).
		Int64("amount", amount).
		Msg("tip sent")

	return &response_models.BalanceResponse{
		NewBalance:      result.PaidCredits + result.BonusCredits,
		NewPaidCredits:  result.PaidCredits,
		NewBonusCredits: result.BonusCredits,
	}, nil
}
