package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrForbidden               = errors.New("forbidden")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrNotEnoughBalance        = errors.New("not enough balance")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidToken            = errors.New("invalid token")
)

// CurrencySymbol используется только в сообщениях для пользователя.
const CurrencySymbol = "₹"

// InsufficientBalanceError возвращается при попытке списать больше, чем есть на счету.
// errors.Is(err, ErrNotEnoughBalance) для нее истинно.
type InsufficientBalanceError struct {
	Available decimal.Decimal
}

func NewInsufficientBalanceError(available decimal.Decimal) error {
	return &InsufficientBalanceError{Available: available}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Available: %s%s", CurrencySymbol, e.Available.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrNotEnoughBalance
}
