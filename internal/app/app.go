package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/bankoffice/internal/config"
	"github.com/fsdevblog/bankoffice/internal/repository/pgrepo"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/fsdevblog/bankoffice/internal/service/psswd"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/fsdevblog/bankoffice/internal/transport/api"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":     a.Config.RunAddress,
		"migrations":  a.Config.MigrationsDir,
		"access_ttl":  a.Config.AccessTokenTTL.String(),
		"refresh_ttl": a.Config.RefreshTokenTTL.String(),
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	secret := []byte(a.Config.JWTSecret)
	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		Hasher:    psswd.PasswordHash{},
		JWTSecret: secret,
		TokenTTL: tokens.TTL{
			Access:  a.Config.AccessTokenTTL,
			Refresh: a.Config.RefreshTokenTTL,
		},
		Logger: a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	if a.Config.HasAdminCredentials() {
		created, err := services.UserService.EnsureSuperAdmin(notifyCtx, a.Config.AdminUsername, a.Config.AdminPassword)
		if err != nil {
			return fmt.Errorf("app run: %w", err)
		}
		if created {
			a.Logger.WithField("username", a.Config.AdminUsername).Info("super admin created")
		}
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:                a.Logger,
		UserService:           services.UserService,
		AccountService:        services.AccountService,
		LedgerService:         services.LedgerService,
		MoneyService:          services.MoneyService,
		ServiceRequestService: services.ServiceRequestService,
		DashboardService:      services.DashboardService,
		HealthChecker:         conn,
		JWTSecretKey:          secret,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %w", rErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return fmt.Errorf("http server: %w", err)
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAccountRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceTransactionRepository(dbtx)
		},
		repoargs.ServiceRequestRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewServiceRequestRepository(dbtx)
		},
		repoargs.StatsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStatsRepository(dbtx)
		},
	}

	for name, fn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), fn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
