package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `t.id, t.created_at, t.account_id, a.account_number, t.transaction_type,
	t.amount, t.balance_after, t.description, t.reference_id`

type BalanceTransactionRepository struct {
	db uow.DBTX
}

func NewBalanceTransactionRepository(conn uow.DBTX) *BalanceTransactionRepository {
	return &BalanceTransactionRepository{db: conn}
}

// Create добавляет запись в журнал операций. При конфликте reference_id возвращает domain.ErrDuplicateKey,
// не прерывая текущую транзакцию.
func (b *BalanceTransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := b.db.QueryRow(ctx,
		`WITH t AS (
			INSERT INTO transactions (account_id, transaction_type, amount, balance_after, description, reference_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (reference_id) DO NOTHING
			RETURNING *
		)
		SELECT `+transactionColumns+` FROM t JOIN accounts a ON a.id = t.account_id`,
		args.AccountID,
		string(args.Direction),
		args.Amount,
		args.BalanceAfter,
		args.Description,
		args.ReferenceID,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertInsertConflictErr(err, "creating transaction %s", args.ReferenceID)
	}
	return transaction, nil
}

// List возвращает записи журнала по счетам владельца filter.OwnerID, от новых к старым.
func (b *BalanceTransactionRepository) List(
	ctx context.Context,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = $1`
	args := []any{filter.OwnerID}

	if filter.Direction != "" {
		args = append(args, string(filter.Direction))
		query += fmt.Sprintf(" AND t.transaction_type = $%d", len(args))
	}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += fmt.Sprintf(" AND t.account_id = $%d", len(args))
	}
	query += " ORDER BY t.created_at DESC, t.id DESC"
	if filter.Limit > 0 {
		args = append(args, int64(filter.Limit))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing transactions of user %d", filter.OwnerID)
	}
	transactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		transaction, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *transaction, nil
	})
	if err != nil {
		return nil, convertErr(err, "listing transactions of user %d", filter.OwnerID)
	}
	return transactions, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var direction string
	if err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.AccountID,
		&transaction.AccountNumber,
		&direction,
		&transaction.Amount,
		&transaction.BalanceAfter,
		&transaction.Description,
		&transaction.ReferenceID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	transaction.Direction = domain.DirectionType(direction)
	return &transaction, nil
}
