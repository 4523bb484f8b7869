package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"

	accountsBalanceCheck = "accounts_balance_check"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - pgx.ErrNoRows и нарушение внешнего ключа возвращаются как domain.ErrRecordNotFound.
//   - Дубликаты ключей (uniqueViolationCode) возвращаются как domain.ErrDuplicateKey.
//   - Нарушение ограничения неотрицательного баланса возвращается как domain.ErrNotEnoughBalance.
//   - Все остальные ошибки возвращаются как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case pgErr.Code == foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		case pgErr.Code == checkViolationCode && pgErr.ConstraintName == accountsBalanceCheck:
			errType = domain.ErrNotEnoughBalance
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

// convertInsertConflictErr используется для вставок с ON CONFLICT DO NOTHING: отсутствие возвращенной
// строки означает конфликт уникального ключа, а не отсутствие записи.
func convertInsertConflictErr(err error, format string, formatArgs ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(format, formatArgs...), domain.ErrDuplicateKey)
	}
	return convertErr(err, format, formatArgs...)
}
