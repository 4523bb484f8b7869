package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	userRepo    UserRepository
	accountRepo AccountRepository
}

func NewAccountService(u uow.UOW) (*AccountService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	accountRepo, accountRepoErr :=
		uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr
	}
	return &AccountService{userRepo: userRepo, accountRepo: accountRepo}, nil
}

// ListOwn возвращает счета клиента actor.
func (s *AccountService) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	if !domain.CustomerOnly(actor) {
		return nil, domain.ErrForbidden
	}
	accounts, err := s.accountRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

// ListCustomerAccounts возвращает счета клиента customerID, если его создал менеджер actor.
// Чужой или несуществующий клиент дает domain.ErrRecordNotFound.
func (s *AccountService) ListCustomerAccounts(
	ctx context.Context,
	actor domain.Actor,
	customerID int64,
) ([]domain.Account, error) {
	if !domain.RMOnly(actor) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.userRepo.FindCustomerOf(ctx, customerID, actor.ID); err != nil {
		return nil, fmt.Errorf("listing customer accounts: %w", err)
	}
	accounts, err := s.accountRepo.GetByUserID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer accounts: %w", err)
	}
	return accounts, nil
}

// openAccount открывает счет с нулевым балансом и уникальным номером. Вызывается внутри транзакции.
func openAccount(
	ctx context.Context,
	repo AccountRepository,
	userID int64,
	accountType domain.AccountType,
) (*domain.Account, error) {
	return withUniqueCode(accountNumberPrefix, accountNumberLength, func(code string) (*domain.Account, error) {
		return repo.CreateAccount(ctx, repoargs.CreateAccount{ //nolint:wrapcheck
			UserID:        userID,
			AccountNumber: code,
			AccountType:   accountType,
			Balance:       decimal.Zero,
		})
	})
}
