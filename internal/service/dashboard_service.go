package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
)

const RecentTransactionsLimit = 5

type DashboardService struct {
	statsRepo StatsRepository
	txRepo    BalanceTransactionRepository
}

func NewDashboardService(u uow.UOW) (*DashboardService, error) {
	statsRepo, statsRepoErr := uow.GetRepositoryAs[StatsRepository](u, uow.RepositoryName(repoargs.StatsRepoName))
	if statsRepoErr != nil {
		return nil, statsRepoErr
	}
	txRepo, txRepoErr :=
		uow.GetRepositoryAs[BalanceTransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if txRepoErr != nil {
		return nil, txRepoErr
	}
	return &DashboardService{statsRepo: statsRepo, txRepo: txRepo}, nil
}

// Stats собирает сводку в зависимости от роли actor. Возвращает *domain.AdminDashboard,
// *domain.RMDashboard или *domain.CustomerDashboard.
func (s *DashboardService) Stats(ctx context.Context, actor domain.Actor) (any, error) {
	var (
		res any
		err error
	)
	switch {
	case domain.SuperAdminOnly(actor):
		res, err = s.adminStats(ctx)
	case domain.RMOnly(actor):
		res, err = s.rmStats(ctx, actor.ID)
	case domain.CustomerOnly(actor):
		res, err = s.customerStats(ctx, actor.ID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return res, nil
}

func (s *DashboardService) adminStats(ctx context.Context) (*domain.AdminDashboard, error) {
	rms, err := s.statsRepo.CountUsers(ctx, repoargs.UserFilter{Role: domain.RoleRM})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	customers, err := s.statsRepo.CountUsers(ctx, repoargs.UserFilter{Role: domain.RoleCustomer})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	balance, err := s.statsRepo.BalanceStats(ctx, repoargs.AccountOwnerFilter{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	pending, err := s.statsRepo.CountServiceRequests(ctx,
		repoargs.ServiceRequestFilter{Status: domain.ServiceStatusPending})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &domain.AdminDashboard{
		BalanceStats:    *balance,
		TotalRMs:        rms,
		TotalCustomers:  customers,
		PendingServices: pending,
	}, nil
}

func (s *DashboardService) rmStats(ctx context.Context, rmID int64) (*domain.RMDashboard, error) {
	customers, err := s.statsRepo.CountUsers(ctx,
		repoargs.UserFilter{Role: domain.RoleCustomer, CreatedByID: &rmID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	balance, err := s.statsRepo.BalanceStats(ctx, repoargs.AccountOwnerFilter{OwnerCreatedByID: &rmID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	pending, err := s.statsRepo.CountServiceRequests(ctx, repoargs.ServiceRequestFilter{
		OwnerCreatedByID: &rmID,
		Status:           domain.ServiceStatusPending,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &domain.RMDashboard{
		BalanceStats:    *balance,
		TotalCustomers:  customers,
		PendingServices: pending,
	}, nil
}

func (s *DashboardService) customerStats(ctx context.Context, customerID int64) (*domain.CustomerDashboard, error) {
	balance, err := s.statsRepo.BalanceStats(ctx, repoargs.AccountOwnerFilter{UserID: &customerID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	recent, err := s.txRepo.List(ctx, repoargs.TransactionFilter{
		OwnerID: customerID,
		Limit:   RecentTransactionsLimit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	pending, err := s.statsRepo.CountServiceRequests(ctx, repoargs.ServiceRequestFilter{
		UserID: &customerID,
		Status: domain.ServiceStatusPending,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &domain.CustomerDashboard{
		BalanceStats:       *balance,
		RecentTransactions: recent,
		PendingServices:    pending,
	}, nil
}
