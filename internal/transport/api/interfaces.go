package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, *tokens.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (*tokens.Pair, error)
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
	CreateManager(ctx context.Context, actor domain.Actor, args service.CreateUserArgs) (*domain.User, error)
	CreateCustomer(
		ctx context.Context,
		actor domain.Actor,
		args service.CreateUserArgs,
	) (*domain.User, *domain.Account, error)
	ListManagers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	ListCustomers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	ListAllCustomers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
}

type AccountServicer interface {
	ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Account, error)
	ListCustomerAccounts(ctx context.Context, actor domain.Actor, customerID int64) ([]domain.Account, error)
}

type LedgerServicer interface {
	List(ctx context.Context, actor domain.Actor, args service.ListTransactionsArgs) ([]domain.Transaction, error)
}

type MoneyServicer interface {
	Deposit(ctx context.Context, actor domain.Actor, args service.MoveMoneyArgs) (*service.MovementResult, error)
	Withdraw(ctx context.Context, actor domain.Actor, args service.MoveMoneyArgs) (*service.MovementResult, error)
}

type ServiceRequestServicer interface {
	Create(
		ctx context.Context,
		actor domain.Actor,
		args service.CreateServiceRequestArgs,
	) (*domain.ServiceRequest, error)
	ListOwn(ctx context.Context, actor domain.Actor) ([]domain.ServiceRequest, error)
	ListBackOffice(
		ctx context.Context,
		actor domain.Actor,
		status domain.ServiceStatusType,
	) ([]domain.ServiceRequest, error)
	UpdateStatus(
		ctx context.Context,
		actor domain.Actor,
		args service.UpdateServiceRequestArgs,
	) (*domain.ServiceRequest, error)
}

type DashboardServicer interface {
	Stats(ctx context.Context, actor domain.Actor) (any, error)
}

// HealthChecker проверка доступности базы, реализуется *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
