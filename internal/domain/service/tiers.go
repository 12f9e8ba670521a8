package service

import (
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// amountTier maps a principal band to installment counts per comfort level
// and a default installment cadence. The table is ordered by ascending limit
// and traversed first-match; thresholds can be tuned without touching the
// traversal logic.
type amountTier struct {
	limit       decimal.Decimal // inclusive upper bound of the band
	frequency   valueobject.Frequency
	comfortable int
	balanced    int
	aggressive  int
}

var amountTiers = []amountTier{
	{limit: decimal.NewFromInt(100), frequency: valueobject.FrequencyWeekly, comfortable: 4, balanced: 2, aggressive: 1},
	{limit: decimal.NewFromInt(300), frequency: valueobject.FrequencyWeekly, comfortable: 6, balanced: 4, aggressive: 2},
	{limit: decimal.NewFromInt(500), frequency: valueobject.FrequencyBiweekly, comfortable: 8, balanced: 4, aggressive: 2},
	{limit: decimal.NewFromInt(1000), frequency: valueobject.FrequencyBiweekly, comfortable: 10, balanced: 6, aggressive: 3},
	{limit: decimal.NewFromInt(2000), frequency: valueobject.FrequencyMonthly, comfortable: 12, balanced: 8, aggressive: 4},
}

// countClamp bounds the installment count derived from the budget-share path
// used for principals above the last tier.
type countClamp struct {
	min int
	max int
}

// Budget shares (percent of disposable income) and count clamps for
// principals above 2000.
var largePrincipalRules = map[valueobject.ComfortLevel]struct {
	sharePercent int64
	clamp        countClamp
}{
	valueobject.ComfortLevelComfortable: {sharePercent: 15, clamp: countClamp{min: 8, max: 24}},
	valueobject.ComfortLevelBalanced:    {sharePercent: 22, clamp: countClamp{min: 4, max: 12}},
	valueobject.ComfortLevelAggressive:  {sharePercent: 30, clamp: countClamp{min: 2, max: 6}},
}

// Installment counts offered for principals above the last tier when no
// income data is available: the upper clamp bounds, which keep the same
// comfortable ≥ balanced ≥ aggressive ordering.
var largePrincipalCounts = map[valueobject.ComfortLevel]int{
	valueobject.ComfortLevelComfortable: 24,
	valueobject.ComfortLevelBalanced:    12,
	valueobject.ComfortLevelAggressive:  6,
}

// findTier returns the first tier whose limit covers the principal, or
// ok=false when the principal is above the last band.
func findTier(principal decimal.Decimal) (amountTier, bool) {
	for _, tier := range amountTiers {
		if principal.LessThanOrEqual(tier.limit) {
			return tier, true
		}
	}
	return amountTier{}, false
}
