package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	apiSuite
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestAdmin() {
	s.mockDashboard.EXPECT().Stats(gomock.Any(), s.admin).Return(&domain.AdminDashboard{
		BalanceStats: domain.BalanceStats{
			TotalAccounts: 3,
			TotalBalance:  decimal.NewNullDecimal(decimal.RequireFromString("2500.5")),
		},
		TotalRMs:        1,
		TotalCustomers:  3,
		PendingServices: 2,
	}, nil)

	var body AdminStatsResponse
	s.decode(s.do(http.MethodGet, DashboardRoute, s.adminToken, nil), http.StatusOK, &body)
	s.Equal(AdminStatsResponse{
		TotalRMs:        1,
		TotalCustomers:  3,
		TotalAccounts:   3,
		TotalBalance:    "2500.50",
		PendingServices: 2,
	}, body)
}

func (s *DashboardHandlerTestSuite) TestRMWithoutCustomers() {
	s.mockDashboard.EXPECT().Stats(gomock.Any(), s.rm).Return(&domain.RMDashboard{}, nil)

	var body map[string]any
	s.decode(s.do(http.MethodGet, DashboardRoute, s.rmToken, nil), http.StatusOK, &body)
	s.Equal(map[string]any{
		"total_customers":  float64(0),
		"total_accounts":   float64(0),
		"total_balance":    "0",
		"pending_services": float64(0),
	}, body)
}

func (s *DashboardHandlerTestSuite) TestCustomer() {
	s.mockDashboard.EXPECT().Stats(gomock.Any(), s.customer).Return(&domain.CustomerDashboard{
		BalanceStats: domain.BalanceStats{
			TotalAccounts: 1,
			TotalBalance:  decimal.NewNullDecimal(decimal.NewFromInt(0)),
		},
		RecentTransactions: []domain.Transaction{{ID: 1, Direction: domain.DirectionCredit,
			Amount: decimal.NewFromInt(5), BalanceAfter: decimal.NewFromInt(5)}},
	}, nil)

	var body CustomerStatsResponse
	s.decode(s.do(http.MethodGet, DashboardRoute, s.customerToken, nil), http.StatusOK, &body)
	s.Equal("0.00", body.TotalBalance)
	s.Require().Len(body.RecentTransactions, 1)
	s.Equal("5.00", body.RecentTransactions[0].Amount)
}
