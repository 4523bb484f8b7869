package service

import (
	"context"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindCustomerOf(ctx context.Context, customerID, rmID int64) (*domain.User, error)
	ListUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, error)
	ExistsWithRole(ctx context.Context, role domain.Role) (bool, error)
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	FindActiveForUpdate(ctx context.Context, id, ownerID int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Account, error)
}

type BalanceTransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	List(ctx context.Context, filter repoargs.TransactionFilter) ([]domain.Transaction, error)
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateServiceRequest) (*domain.ServiceRequest, error)
	List(ctx context.Context, filter repoargs.ServiceRequestFilter) ([]domain.ServiceRequest, error)
	FindForUpdate(ctx context.Context, id int64, ownerCreatedByID *int64) (*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateServiceRequestStatus) (*domain.ServiceRequest, error)
}

type StatsRepository interface {
	CountUsers(ctx context.Context, filter repoargs.UserFilter) (int64, error)
	BalanceStats(ctx context.Context, filter repoargs.AccountOwnerFilter) (*domain.BalanceStats, error)
	CountServiceRequests(ctx context.Context, filter repoargs.ServiceRequestFilter) (int64, error)
}
