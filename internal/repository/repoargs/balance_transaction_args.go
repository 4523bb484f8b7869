package repoargs

import (
	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	AccountID    int64
	Direction    domain.DirectionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Description  string
	ReferenceID  string
}

// TransactionFilter OwnerID обязателен. Direction и AccountID опциональны, Limit 0 означает без ограничения.
type TransactionFilter struct {
	OwnerID   int64
	Direction domain.DirectionType
	AccountID *int64
	Limit     uint
}
