package service

import (
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

var (
	minBudgetPayment = decimal.NewFromInt(50)
	oneHundred       = decimal.NewFromInt(100)
)

// AffordabilityAdvisor derives comfortable/balanced/aggressive repayment
// shapes from a borrower's financial profile. It is a pure domain service:
// no I/O, deterministic for a given principal and profile.
type AffordabilityAdvisor struct{}

func NewAffordabilityAdvisor() *AffordabilityAdvisor {
	return &AffordabilityAdvisor{}
}

// Suggest returns the three comfort-level suggestions for the given
// principal, or nil when the profile has no positive disposable income.
// Nil is the degraded mode: callers fall back to presets or manual entry.
func (a *AffordabilityAdvisor) Suggest(principal decimal.Decimal, profile model.FinancialProfile) *model.ComfortSuggestions {
	if !principal.IsPositive() {
		return nil
	}
	if !profile.HasDisposableIncome() {
		return nil
	}

	counts := a.installmentCounts(principal, profile)

	return &model.ComfortSuggestions{
		Comfortable: a.buildSuggestion(valueobject.ComfortLevelComfortable, counts[valueobject.ComfortLevelComfortable], principal, profile),
		Balanced:    a.buildSuggestion(valueobject.ComfortLevelBalanced, counts[valueobject.ComfortLevelBalanced], principal, profile),
		Aggressive:  a.buildSuggestion(valueobject.ComfortLevelAggressive, counts[valueobject.ComfortLevelAggressive], principal, profile),
	}
}

// installmentCounts resolves the count per comfort level: a tier-table lookup
// for small principals, a budget-share computation above the last tier.
func (a *AffordabilityAdvisor) installmentCounts(principal decimal.Decimal, profile model.FinancialProfile) map[valueobject.ComfortLevel]int {
	if tier, ok := findTier(principal); ok {
		return map[valueobject.ComfortLevel]int{
			valueobject.ComfortLevelComfortable: tier.comfortable,
			valueobject.ComfortLevelBalanced:    tier.balanced,
			valueobject.ComfortLevelAggressive:  tier.aggressive,
		}
	}

	counts := make(map[valueobject.ComfortLevel]int, len(largePrincipalRules))
	for level, rule := range largePrincipalRules {
		counts[level] = a.budgetCount(principal, profile, rule.sharePercent, rule.clamp)
	}
	return counts
}

// budgetCount sizes installments from a share of monthly disposable income.
// The monthly budget is converted to a per-paycheck payment, floored at the
// minimum viable payment, and the resulting count is clamped to the level's
// bounds so extreme incomes still yield a plausible plan length.
func (a *AffordabilityAdvisor) budgetCount(principal decimal.Decimal, profile model.FinancialProfile, sharePercent int64, clamp countClamp) int {
	monthlyBudget := profile.DisposableIncome.Mul(decimal.NewFromInt(sharePercent)).Div(oneHundred)

	payment := monthlyBudget.Div(profile.PayFrequency.MonthlyMultiplier()).Round(0)
	if payment.LessThan(minBudgetPayment) {
		payment = minBudgetPayment
	}

	count := int(principal.Div(payment).Ceil().IntPart())
	if count < clamp.min {
		count = clamp.min
	}
	if count > clamp.max {
		count = clamp.max
	}
	return count
}

// buildSuggestion fills in the derived fields for one level. The payment
// amount is the principal split evenly across the count, rounded up to whole
// currency units so the schedule never undershoots the principal.
func (a *AffordabilityAdvisor) buildSuggestion(level valueobject.ComfortLevel, count int, principal decimal.Decimal, profile model.FinancialProfile) model.ComfortSuggestion {
	frequency := profile.PayFrequency.ScheduleFrequency()
	countDec := decimal.NewFromInt(int64(count))

	payment := principal.Div(countDec).Ceil()
	monthlyEquivalent := payment.Mul(profile.PayFrequency.MonthlyMultiplier())

	percent := int(monthlyEquivalent.Div(profile.DisposableIncome).Mul(oneHundred).Round(0).IntPart())
	if percent > 100 {
		percent = 100
	}

	return model.ComfortSuggestion{
		Level:               level,
		Frequency:           frequency,
		PaymentAmount:       payment,
		TotalRepayment:      payment.Mul(countDec),
		NumberOfPayments:    count,
		PercentOfDisposable: percent,
		WeeksToPayoff:       count * frequency.WeeksPerPayment(),
	}
}
