package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/logger"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDepositDescription  = "Cash Deposit"
	DefaultWithdrawDescription = "Cash Withdrawal"

	amountScale         = 2
	amountIntegerDigits = 10
)

var maxAmount = decimal.New(1, amountIntegerDigits)

type MoneyService struct {
	uow uow.UOW
	l   *logrus.Entry
}

func NewMoneyService(u uow.UOW, l *logrus.Logger) *MoneyService {
	return &MoneyService{
		uow: u,
		l:   logger.Component(l, "service", "money"),
	}
}

type MoveMoneyArgs struct {
	AccountID   int64
	Amount      decimal.Decimal
	Description string
}

type MovementResult struct {
	Transaction *domain.Transaction
	NewBalance  decimal.Decimal
}

// ValidateAmount проверяет сумму операции: строго больше нуля, не больше двух знаков после запятой
// и не больше десяти знаков в целой части.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", domain.ErrInvalidAmount, amountScale)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: amount is too large", domain.ErrInvalidAmount)
	}
	return nil
}

// Deposit зачисляет сумму на активный счет клиента actor.
func (s *MoneyService) Deposit(ctx context.Context, actor domain.Actor, args MoveMoneyArgs) (*MovementResult, error) {
	if args.Description == "" {
		args.Description = DefaultDepositDescription
	}
	res, err := s.move(ctx, actor, domain.DirectionCredit, args)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	return res, nil
}

// Withdraw списывает сумму с активного счета клиента actor. Если средств недостаточно, возвращает
// *domain.InsufficientBalanceError, баланс и журнал при этом не меняются.
func (s *MoneyService) Withdraw(ctx context.Context, actor domain.Actor, args MoveMoneyArgs) (*MovementResult, error) {
	if args.Description == "" {
		args.Description = DefaultWithdrawDescription
	}
	res, err := s.move(ctx, actor, domain.DirectionDebit, args)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	return res, nil
}

// move блокирует строку счета, меняет баланс и пишет запись в журнал в одной транзакции.
// Операции над одним счетом выполняются строго последовательно, над разными параллельно.
func (s *MoneyService) move(
	ctx context.Context,
	actor domain.Actor,
	direction domain.DirectionType,
	args MoveMoneyArgs,
) (*MovementResult, error) {
	if !domain.CustomerOnly(actor) {
		return nil, domain.ErrForbidden
	}
	if err := ValidateAmount(args.Amount); err != nil {
		return nil, err
	}

	var result MovementResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr :=
			uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		txRepo, txRepoErr :=
			uow.GetAs[BalanceTransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if txRepoErr != nil {
			return txRepoErr //nolint:wrapcheck
		}

		account, findErr := accountRepo.FindActiveForUpdate(c, args.AccountID, actor.ID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		newBalance := account.Balance.Add(args.Amount)
		if direction == domain.DirectionDebit {
			if account.Balance.LessThan(args.Amount) {
				return domain.NewInsufficientBalanceError(account.Balance)
			}
			newBalance = account.Balance.Sub(args.Amount)
		}

		updated, updateErr := accountRepo.UpdateBalance(c, account.ID, newBalance)
		if updateErr != nil {
			return updateErr //nolint:wrapcheck
		}

		entry, entryErr := appendEntry(c, txRepo, ledgerEntry{
			accountID:    updated.ID,
			direction:    direction,
			amount:       args.Amount,
			balanceAfter: updated.Balance,
			description:  args.Description,
		})
		if entryErr != nil {
			return entryErr
		}

		result = MovementResult{Transaction: entry, NewBalance: updated.Balance}
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}

	s.l.WithFields(logrus.Fields{
		"account_id": args.AccountID,
		"direction":  direction,
		"amount":     args.Amount.StringFixed(amountScale),
		"reference":  result.Transaction.ReferenceID,
	}).Info("balance changed")

	return &result, nil
}
