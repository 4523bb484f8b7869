package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup            = "/api"
	TokenRoute            = "/token"
	TokenRefreshRoute     = "/token/refresh"
	MeRoute               = "/me"
	ManagersRoute         = "/managers"
	CustomersRoute        = "/customers"
	CustomerAccountsRoute = "/customers/:id/accounts"
	AllCustomersRoute     = "/all-customers"
	AccountsRoute         = "/accounts"
	TransactionsRoute     = "/transactions"
	DepositRoute          = "/deposit"
	WithdrawRoute         = "/withdraw"
	ServicesRoute         = "/services"
	ServiceRequestsRoute  = "/service-requests"
	ServiceRequestRoute   = "/service-requests/:id"
	DashboardRoute        = "/dashboard-stats"
	HealthRoute           = "/health"
)

type RouterArgs struct {
	Logger                *logrus.Logger
	UserService           UserServicer
	AccountService        AccountServicer
	LedgerService         LedgerServicer
	MoneyService          MoneyServicer
	ServiceRequestService ServiceRequestServicer
	DashboardService      DashboardServicer
	HealthChecker         HealthChecker
	JWTSecretKey          []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	usersHandler := NewUsersHandler(args.UserService, args.AccountService)
	accountsHandler := NewAccountsHandler(args.AccountService, args.LedgerService)
	moneyHandler := NewMoneyHandler(args.MoneyService)
	srHandler := NewServiceRequestsHandler(args.ServiceRequestService)
	dashboardHandler := NewDashboardHandler(args.DashboardService)

	api := r.Group(RouteGroup)

	api.POST(TokenRoute, authHandler.Login)
	api.POST(TokenRefreshRoute, authHandler.Refresh)
	if args.HealthChecker != nil {
		api.GET(HealthRoute, NewHealthHandler(args.HealthChecker).Index)
	}

	// ниже все роуты группы требуют авторизованного пользователя.
	authorized := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	authorized.GET(MeRoute, authHandler.Me)
	authorized.GET(DashboardRoute, dashboardHandler.Stats)

	superAdmin := authorized.Group("", middlewares.RequireRole(domain.SuperAdminOnly))
	superAdmin.GET(ManagersRoute, usersHandler.ListManagers)
	superAdmin.POST(ManagersRoute, usersHandler.CreateManager)
	superAdmin.GET(AllCustomersRoute, usersHandler.ListAllCustomers)

	rm := authorized.Group("", middlewares.RequireRole(domain.RMOnly))
	rm.GET(CustomersRoute, usersHandler.ListCustomers)
	rm.POST(CustomersRoute, usersHandler.CreateCustomer)
	rm.GET(CustomerAccountsRoute, usersHandler.CustomerAccounts)

	customer := authorized.Group("", middlewares.RequireRole(domain.CustomerOnly))
	customer.GET(AccountsRoute, accountsHandler.Index)
	customer.GET(TransactionsRoute, accountsHandler.Transactions)
	customer.POST(DepositRoute, moneyHandler.Deposit)
	customer.POST(WithdrawRoute, moneyHandler.Withdraw)
	customer.GET(ServicesRoute, srHandler.Index)
	customer.POST(ServicesRoute, srHandler.Create)

	backOffice := authorized.Group("", middlewares.RequireRole(domain.SuperAdminOrRM))
	backOffice.GET(ServiceRequestsRoute, srHandler.BackOffice)
	backOffice.PATCH(ServiceRequestRoute, srHandler.UpdateStatus)

	return r, nil
}
