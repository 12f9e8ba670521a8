package model

import (
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// FinancialProfile is the read-only income snapshot supplied by the
// financial-profile collaborator. DisposableIncome arrives precomputed; this
// engine never derives income or expenses itself.
type FinancialProfile struct {
	PayFrequency     valueobject.PayFrequency
	PayAmount        decimal.Decimal
	MonthlyIncome    decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	DisposableIncome decimal.Decimal
	ComfortLevel     valueobject.ComfortLevel
}

// HasDisposableIncome reports whether the profile can safely drive
// suggestions. A non-positive disposable income is the defined degraded mode:
// no suggestion is made and the caller falls back to presets or manual entry.
func (p FinancialProfile) HasDisposableIncome() bool {
	return p.DisposableIncome.IsPositive()
}
