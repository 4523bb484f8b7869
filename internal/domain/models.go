package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	Role              Role
	CreatedByID       *int64
	Email             string
	FirstName         string
	LastName          string
	Phone             string
	Address           string
	IsActive          bool
}

// FullName возвращает имя и фамилию, либо username если они не заполнены.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

type Account struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	IsActive      bool
}

// Transaction запись журнала операций по счету. Записи только добавляются.
type Transaction struct {
	ID            int64
	CreatedAt     time.Time
	AccountID     int64
	AccountNumber string
	Direction     DirectionType
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	ReferenceID   string
}

type ServiceRequest struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	ServiceType ServiceType
	Status      ServiceStatusType
	Remarks     string
}
