package model

import (
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// ComfortSuggestion is one income-aware repayment shape: an installment
// count/size pair bounded by percentage-of-income limits. Suggestions are
// derived values, recomputed on every input change and never persisted; only
// the suggestion the borrower picks becomes LoanTerms.
type ComfortSuggestion struct {
	Level               valueobject.ComfortLevel
	Frequency           valueobject.Frequency
	PaymentAmount       decimal.Decimal
	TotalRepayment      decimal.Decimal
	NumberOfPayments    int
	PercentOfDisposable int
	WeeksToPayoff       int
}

// ComfortSuggestions groups the three named suggestion levels. The invariant
// Comfortable.NumberOfPayments ≥ Balanced.NumberOfPayments ≥
// Aggressive.NumberOfPayments holds for every principal tier.
type ComfortSuggestions struct {
	Comfortable ComfortSuggestion
	Balanced    ComfortSuggestion
	Aggressive  ComfortSuggestion
}

// RepaymentPreset is a selectable schedule shape for borrowers without a
// financial profile. Exactly one preset in a generated list is recommended.
type RepaymentPreset struct {
	Label         string
	Frequency     valueobject.Frequency
	Installments  int
	PaymentAmount decimal.Decimal
	Recommended   bool
}
