package domain

import "github.com/shopspring/decimal"

// BalanceStats агрегаты по набору счетов. TotalBalance невалиден, если счетов нет.
type BalanceStats struct {
	TotalAccounts int64
	TotalBalance  decimal.NullDecimal
}

type AdminDashboard struct {
	BalanceStats
	TotalRMs        int64
	TotalCustomers  int64
	PendingServices int64
}

type RMDashboard struct {
	BalanceStats
	TotalCustomers  int64
	PendingServices int64
}

type CustomerDashboard struct {
	BalanceStats
	RecentTransactions []Transaction
	PendingServices    int64
}
