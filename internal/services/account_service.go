package services

import (
	"context"

	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/internal/models/request_models"
	"fanloft/internal/models/response_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	logger      zerolog.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	logger zerolog.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, string(account.Role))
	if err != nil {
		a.logger.Error().Err(err).Str("account_id", account.ID.String()).Msg("token issue failed")
		return nil, err
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  string(account.Role),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.InsertTx(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info().Str("account_id", account.ID.String()).Msg("account created")

	return toAccountResponse(account), nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		result = append(result, *toAccountResponse(&accounts[i]))
	}
	return result, nil
}

func toAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	resp := &response_models.AccountResponse{
		ID:    a.ID.String(),
		Name:  a.Name,
		Email: a.Email,
		Role:  string(a.Role),
	}
	if a.Slug != nil {
		resp.Slug = *a.Slug
	}
	return resp
}
