package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
)

// StatsRepository агрегирующие запросы для дашбордов. Только чтение.
type StatsRepository struct {
	db uow.DBTX
}

func NewStatsRepository(conn uow.DBTX) *StatsRepository {
	return &StatsRepository{db: conn}
}

func (s *StatsRepository) CountUsers(ctx context.Context, filter repoargs.UserFilter) (int64, error) {
	where, args := userFilterSQL(filter)
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&count); err != nil {
		return 0, convertErr(err, "counting users")
	}
	return count, nil
}

// BalanceStats считает количество счетов и сумму их балансов. Для пустого набора сумма невалидна (NULL).
func (s *StatsRepository) BalanceStats(
	ctx context.Context,
	filter repoargs.AccountOwnerFilter,
) (*domain.BalanceStats, error) {
	var conds []string
	var args []any
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("a.user_id = $%d", len(args)))
	}
	if filter.OwnerCreatedByID != nil {
		args = append(args, *filter.OwnerCreatedByID)
		conds = append(conds, fmt.Sprintf("u.created_by_id = $%d", len(args)))
	}
	query := `SELECT COUNT(a.id), SUM(a.balance) FROM accounts a JOIN users u ON u.id = a.user_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var stats domain.BalanceStats
	if err := s.db.QueryRow(ctx, query, args...).Scan(&stats.TotalAccounts, &stats.TotalBalance); err != nil {
		return nil, convertErr(err, "aggregating balances")
	}
	return &stats, nil
}

func (s *StatsRepository) CountServiceRequests(
	ctx context.Context,
	filter repoargs.ServiceRequestFilter,
) (int64, error) {
	where, args := serviceRequestFilterSQL(filter)
	var count int64
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM service_requests sr JOIN users u ON u.id = sr.user_id`+where,
		args...,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting service requests")
	}
	return count, nil
}
