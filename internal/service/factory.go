package service

import (
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService           *UserService
	AccountService        *AccountService
	LedgerService         *LedgerService
	MoneyService          *MoneyService
	ServiceRequestService *ServiceRequestService
	DashboardService      *DashboardService
}

type FactoryArgs struct {
	UOW       uow.UOW
	Hasher    PasswordHasher
	JWTSecret []byte
	TokenTTL  tokens.TTL
	Logger    *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.Hasher, args.JWTSecret, args.TokenTTL)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	accountService, accountServiceErr := NewAccountService(args.UOW)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(args.UOW)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	srService, srServiceErr := NewServiceRequestService(args.UOW)
	if srServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", srServiceErr.Error())
	}

	dashboardService, dashboardServiceErr := NewDashboardService(args.UOW)
	if dashboardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", dashboardServiceErr.Error())
	}

	return &AppServices{
		UserService:           userService,
		AccountService:        accountService,
		LedgerService:         ledgerService,
		MoneyService:          NewMoneyService(args.UOW, args.Logger),
		ServiceRequestService: srService,
		DashboardService:      dashboardService,
	}, nil
}
