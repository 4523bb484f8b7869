package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/shopspring/decimal"
)

type LedgerService struct {
	txRepo BalanceTransactionRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	txRepo, txRepoErr :=
		uow.GetRepositoryAs[BalanceTransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if txRepoErr != nil {
		return nil, txRepoErr
	}
	return &LedgerService{txRepo: txRepo}, nil
}

type ListTransactionsArgs struct {
	// Direction неизвестные значения игнорируются.
	Direction domain.DirectionType
	AccountID *int64
}

// List возвращает операции по счетам клиента actor, от новых к старым.
func (s *LedgerService) List(
	ctx context.Context,
	actor domain.Actor,
	args ListTransactionsArgs,
) ([]domain.Transaction, error) {
	if !domain.CustomerOnly(actor) {
		return nil, domain.ErrForbidden
	}
	filter := repoargs.TransactionFilter{
		OwnerID:   actor.ID,
		AccountID: args.AccountID,
	}
	if args.Direction.Valid() {
		filter.Direction = args.Direction
	}
	txs, err := s.txRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txs, nil
}

type ledgerEntry struct {
	accountID    int64
	direction    domain.DirectionType
	amount       decimal.Decimal
	balanceAfter decimal.Decimal
	description  string
}

// appendEntry добавляет запись в журнал с уникальным reference id. Вызывается внутри транзакции,
// в которой изменен баланс.
func appendEntry(
	ctx context.Context,
	repo BalanceTransactionRepository,
	entry ledgerEntry,
) (*domain.Transaction, error) {
	return withUniqueCode(referencePrefix, referenceLength, func(code string) (*domain.Transaction, error) {
		return repo.Create(ctx, repoargs.CreateTransaction{ //nolint:wrapcheck
			AccountID:    entry.accountID,
			Direction:    entry.direction,
			Amount:       entry.amount,
			BalanceAfter: entry.balanceAfter,
			Description:  entry.description,
			ReferenceID:  code,
		})
	})
}
