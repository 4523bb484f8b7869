package api

import (
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// moneyScale деньги в ответах всегда строкой с двумя знаками после запятой.
const moneyScale = 2

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(moneyScale)
}

// formatTotal пустая сумма (нет ни одного счета) отдается как "0".
func formatTotal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "0"
	}
	return formatMoney(d.Decimal)
}

type UserResponse struct {
	ID         int64       `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	FullName   string      `json:"full_name"`
	Role       domain.Role `json:"role"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	IsActive   bool        `json:"is_active"`
	DateJoined time.Time   `json:"date_joined"`
	CreatedBy  *int64      `json:"created_by"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Role:       u.Role,
		Phone:      u.Phone,
		Address:    u.Address,
		IsActive:   u.IsActive,
		DateJoined: u.CreatedAt,
		CreatedBy:  u.CreatedByID,
	}
}

func newUsersResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = newUserResponse(&users[i])
	}
	return res
}

type AccountResponse struct {
	ID                 int64              `json:"id"`
	AccountNumber      string             `json:"account_number"`
	AccountType        domain.AccountType `json:"account_type"`
	AccountTypeDisplay string             `json:"account_type_display"`
	Balance            string             `json:"balance"`
	IsActive           bool               `json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
}

func newAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                 a.ID,
		AccountNumber:      a.AccountNumber,
		AccountType:        a.AccountType,
		AccountTypeDisplay: a.AccountType.Display(),
		Balance:            formatMoney(a.Balance),
		IsActive:           a.IsActive,
		CreatedAt:          a.CreatedAt,
	}
}

func newAccountsResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = newAccountResponse(&accounts[i])
	}
	return res
}

type TransactionResponse struct {
	ID              int64                `json:"id"`
	AccountNumber   string               `json:"account_number"`
	TransactionType domain.DirectionType `json:"transaction_type"`
	Amount          string               `json:"amount"`
	BalanceAfter    string               `json:"balance_after"`
	Description     string               `json:"description"`
	ReferenceID     string               `json:"reference_id"`
	Timestamp       time.Time            `json:"timestamp"`
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AccountNumber:   t.AccountNumber,
		TransactionType: t.Direction,
		Amount:          formatMoney(t.Amount),
		BalanceAfter:    formatMoney(t.BalanceAfter),
		Description:     t.Description,
		ReferenceID:     t.ReferenceID,
		Timestamp:       t.CreatedAt,
	}
}

func newTransactionsResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = newTransactionResponse(&txs[i])
	}
	return res
}

type ServiceRequestResponse struct {
	ID                 int64                    `json:"id"`
	UserID             int64                    `json:"user_id"`
	ServiceType        domain.ServiceType       `json:"service_type"`
	ServiceTypeDisplay string                   `json:"service_type_display"`
	Status             domain.ServiceStatusType `json:"status"`
	StatusDisplay      string                   `json:"status_display"`
	Remarks            string                   `json:"remarks"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

func newServiceRequestResponse(sr *domain.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:                 sr.ID,
		UserID:             sr.UserID,
		ServiceType:        sr.ServiceType,
		ServiceTypeDisplay: sr.ServiceType.Display(),
		Status:             sr.Status,
		StatusDisplay:      sr.Status.Display(),
		Remarks:            sr.Remarks,
		CreatedAt:          sr.CreatedAt,
		UpdatedAt:          sr.UpdatedAt,
	}
}

func newServiceRequestsResponse(srs []domain.ServiceRequest) []ServiceRequestResponse {
	res := make([]ServiceRequestResponse, len(srs))
	for i := range srs {
		res[i] = newServiceRequestResponse(&srs[i])
	}
	return res
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type CustomerCreatedResponse struct {
	UserResponse
	Account AccountResponse `json:"account"`
}

type MovementResponse struct {
	Detail      string              `json:"detail"`
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  string              `json:"new_balance"`
}

type AdminStatsResponse struct {
	TotalRMs        int64  `json:"total_rms"`
	TotalCustomers  int64  `json:"total_customers"`
	TotalAccounts   int64  `json:"total_accounts"`
	TotalBalance    string `json:"total_balance"`
	PendingServices int64  `json:"pending_services"`
}

type RMStatsResponse struct {
	TotalCustomers  int64  `json:"total_customers"`
	TotalAccounts   int64  `json:"total_accounts"`
	TotalBalance    string `json:"total_balance"`
	PendingServices int64  `json:"pending_services"`
}

type CustomerStatsResponse struct {
	TotalAccounts      int64                 `json:"total_accounts"`
	TotalBalance       string                `json:"total_balance"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	PendingServices    int64                 `json:"pending_services"`
}
