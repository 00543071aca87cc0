package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period selects a statistics window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Valid reports whether p is a member of the closed period set.
func (p Period) Valid() bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodMonthly
}

// StatisticsSnapshot aggregates ledger entries over one period window.
// Profit and loss totals are magnitudes; NetProfit is their difference.
// Derived fresh on every query, never stored.
type StatisticsSnapshot struct {
	Period             Period          `json:"period"`
	AnchorDate         string          `json:"anchorDate"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	TotalLoss          decimal.Decimal `json:"totalLoss"`
	NetProfit          decimal.Decimal `json:"netProfit"`
	TransactionCount   int             `json:"transactionCount"`
	ProfitTransactions int             `json:"profitTransactions"`
	LossTransactions   int             `json:"lossTransactions"`
	AverageProfit      decimal.Decimal `json:"averageProfit"`
	AverageLoss        decimal.Decimal `json:"averageLoss"`
	ProfitRate         float64         `json:"profitRate"`
}

// SystemOverview is the composite read-only view of the whole system.
type SystemOverview struct {
	TransactionCount int           `json:"transactionCount"`
	RiskState        RiskStateView `json:"riskState"`
	Settings         Settings      `json:"settings"`
	LastResetTime    *time.Time    `json:"lastResetTime,omitempty"`
}
