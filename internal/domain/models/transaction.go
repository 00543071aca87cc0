package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates profit from loss entries.
type TransactionType string

const (
	TypeProfit TransactionType = "profit"
	TypeLoss   TransactionType = "loss"
)

// Valid reports whether t is a member of the closed type set.
func (t TransactionType) Valid() bool {
	return t == TypeProfit || t == TypeLoss
}

// Transaction is one recorded journal entry. Amount is sign-normalized in
// storage: profit amounts are positive, loss amounts negative. Date carries
// only a calendar day (YYYY-MM-DD), independent of the creation instant.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Magnitude returns the absolute amount regardless of stored sign.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// TransactionCandidate is the caller-supplied part of a new entry, before
// the ledger assigns identity and timestamps.
type TransactionCandidate struct {
	Date        string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
}

// TransactionPatch carries the updatable fields of an entry. Nil fields are
// left untouched by an update.
type TransactionPatch struct {
	Date        *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	Description *string
}

// TransactionFilter narrows a ledger listing. Zero values match everything.
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Type      TransactionType
}

// Matches reports whether tx passes the filter. Date bounds are inclusive
// and compare lexicographically, which is correct for YYYY-MM-DD.
func (f TransactionFilter) Matches(tx Transaction) bool {
	if f.StartDate != "" && tx.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && tx.Date > f.EndDate {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	return true
}
