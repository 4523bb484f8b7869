package repoargs

import (
	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccount struct {
	UserID        int64
	AccountNumber string
	AccountType   domain.AccountType
	Balance       decimal.Decimal
}

// AccountOwnerFilter отбирает счета по владельцу или по тому, кто создал владельца.
// Пустой фильтр означает все счета банка.
type AccountOwnerFilter struct {
	UserID           *int64
	OwnerCreatedByID *int64
}
