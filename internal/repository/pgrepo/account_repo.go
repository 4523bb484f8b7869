package pgrepo

import (
	"context"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, created_at, user_id, account_number, account_type, balance, is_active`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{db: conn}
}

// CreateAccount открывает счет. Если номер счета уже занят, возвращает domain.ErrDuplicateKey, не прерывая
// текущую транзакцию.
func (a *AccountRepository) CreateAccount(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	row := a.db.QueryRow(ctx,
		`INSERT INTO accounts (user_id, account_number, account_type, balance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_number) DO NOTHING
		RETURNING `+accountColumns,
		args.UserID,
		args.AccountNumber,
		string(args.AccountType),
		args.Balance,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertInsertConflictErr(err, "creating account %s", args.AccountNumber)
	}
	return account, nil
}

// GetByUserID возвращает счета юзера в порядке открытия.
func (a *AccountRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := a.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting accounts by userID %d", userID)
	}
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		account, scanErr := scanAccount(row)
		if scanErr != nil {
			return domain.Account{}, scanErr
		}
		return *account, nil
	})
	if err != nil {
		return nil, convertErr(err, "getting accounts by userID %d", userID)
	}
	return accounts, nil
}

// FindActiveForUpdate находит активный счет id, принадлежащий ownerID, и блокирует строку до конца транзакции.
// Конкурирующие операции по тому же счету ждут освобождения блокировки.
func (a *AccountRepository) FindActiveForUpdate(ctx context.Context, id, ownerID int64) (*domain.Account, error) {
	row := a.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts
		WHERE id = $1 AND user_id = $2 AND is_active
		FOR UPDATE`,
		id, ownerID,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding active account %d of user %d", id, ownerID)
	}
	return account, nil
}

func (a *AccountRepository) UpdateBalance(
	ctx context.Context,
	id int64,
	balance decimal.Decimal,
) (*domain.Account, error) {
	row := a.db.QueryRow(ctx,
		`UPDATE accounts SET balance = $2 WHERE id = $1 RETURNING `+accountColumns,
		id, balance,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "updating balance of account %d", id)
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	var accountType string
	if err := row.Scan(
		&account.ID,
		&account.CreatedAt,
		&account.UserID,
		&account.AccountNumber,
		&accountType,
		&account.Balance,
		&account.IsActive,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	account.AccountType = domain.AccountType(accountType)
	return &account, nil
}
