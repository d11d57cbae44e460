package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sadhana/internal/models/db_models"
	"sadhana/internal/models/request_models"
	"sadhana/internal/models/response_models"
	"sadhana/internal/repositories"
	"sadhana/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Register(ctx context.Context, request request_models.RegisterRequest) error
	AssignRole(ctx context.Context, email string, role string) error
	GetByEmail(ctx context.Context, email string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Login verifies the credentials and issues a 1-hour token carrying the
// account id and role. Unknown email and wrong password are indistinguishable
// to the caller.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return token, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) error {

	if !db_models.ValidRole(request.Role) {
		return utils.ErrInvalidRole
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         request.Role,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// Concurrent registration can slip past the pre-check; the unique
		// index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) AssignRole(ctx context.Context, email string, role string) error {

	if !db_models.ValidRole(role) {
		return utils.ErrInvalidRole
	}

	rows, err := a.accountRepo.UpdateRoleByEmail(ctx, email, role)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrAccountNotFound
	}

	return nil
}

func (a *AccountService) GetByEmail(ctx context.Context, email string) (*response_models.AccountResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}, nil
}
