package service

import (
	"testing"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	repoMocksSuite
	dashboardService *DashboardService
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.repoMocksSuite.SetupTest()
	dashboardService, err := NewDashboardService(s.mockUOW)
	s.Require().NoError(err)
	s.dashboardService = dashboardService
}

func (s *DashboardServiceTestSuite) TestAdmin() {
	s.mockStatsRepo.EXPECT().CountUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleRM}).Return(int64(2), nil)
	s.mockStatsRepo.EXPECT().CountUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleCustomer}).
		Return(int64(5), nil)
	s.mockStatsRepo.EXPECT().BalanceStats(gomock.Any(), repoargs.AccountOwnerFilter{}).
		Return(&domain.BalanceStats{
			TotalAccounts: 5,
			TotalBalance:  decimal.NewNullDecimal(decimal.RequireFromString("1500.5")),
		}, nil)
	s.mockStatsRepo.EXPECT().
		CountServiceRequests(gomock.Any(), repoargs.ServiceRequestFilter{Status: domain.ServiceStatusPending}).
		Return(int64(1), nil)

	res, err := s.dashboardService.Stats(s.T().Context(), domain.Actor{ID: 1, Role: domain.RoleSuperAdmin})
	s.Require().NoError(err)
	stats, ok := res.(*domain.AdminDashboard)
	s.Require().True(ok)
	s.Equal(int64(2), stats.TotalRMs)
	s.Equal(int64(5), stats.TotalCustomers)
	s.Equal(int64(5), stats.TotalAccounts)
	s.Equal("1500.50", stats.TotalBalance.Decimal.StringFixed(2))
	s.Equal(int64(1), stats.PendingServices)
}

func (s *DashboardServiceTestSuite) TestRMWithoutCustomers() {
	rmID := int64(3)
	s.mockStatsRepo.EXPECT().
		CountUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleCustomer, CreatedByID: &rmID}).
		Return(int64(0), nil)
	s.mockStatsRepo.EXPECT().BalanceStats(gomock.Any(), repoargs.AccountOwnerFilter{OwnerCreatedByID: &rmID}).
		Return(&domain.BalanceStats{}, nil)
	s.mockStatsRepo.EXPECT().
		CountServiceRequests(gomock.Any(), repoargs.ServiceRequestFilter{
			OwnerCreatedByID: &rmID,
			Status:           domain.ServiceStatusPending,
		}).
		Return(int64(0), nil)

	res, err := s.dashboardService.Stats(s.T().Context(), domain.Actor{ID: rmID, Role: domain.RoleRM})
	s.Require().NoError(err)
	stats, ok := res.(*domain.RMDashboard)
	s.Require().True(ok)
	s.Zero(stats.TotalCustomers)
	s.Zero(stats.TotalAccounts)
	s.False(stats.TotalBalance.Valid)
	s.Zero(stats.PendingServices)
}

func (s *DashboardServiceTestSuite) TestCustomer() {
	customerID := int64(20)
	s.mockStatsRepo.EXPECT().BalanceStats(gomock.Any(), repoargs.AccountOwnerFilter{UserID: &customerID}).
		Return(&domain.BalanceStats{TotalAccounts: 1, TotalBalance: decimal.NewNullDecimal(decimal.NewFromInt(10))}, nil)
	s.mockTxRepo.EXPECT().
		List(gomock.Any(), repoargs.TransactionFilter{OwnerID: customerID, Limit: RecentTransactionsLimit}).
		Return([]domain.Transaction{{ID: 2}, {ID: 1}}, nil)
	s.mockStatsRepo.EXPECT().
		CountServiceRequests(gomock.Any(), repoargs.ServiceRequestFilter{
			UserID: &customerID,
			Status: domain.ServiceStatusPending,
		}).
		Return(int64(3), nil)

	res, err := s.dashboardService.Stats(s.T().Context(), domain.Actor{ID: customerID, Role: domain.RoleCustomer})
	s.Require().NoError(err)
	stats, ok := res.(*domain.CustomerDashboard)
	s.Require().True(ok)
	s.Len(stats.RecentTransactions, 2)
	s.Equal(int64(3), stats.PendingServices)
}

func (s *DashboardServiceTestSuite) TestUnknownRole() {
	_, err := s.dashboardService.Stats(s.T().Context(), domain.Actor{ID: 1, Role: "auditor"})
	s.Require().ErrorIs(err, domain.ErrForbidden)
}
