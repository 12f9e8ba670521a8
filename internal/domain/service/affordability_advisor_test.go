package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func monthlyProfile(disposable int64) model.FinancialProfile {
	return model.FinancialProfile{
		PayFrequency:     valueobject.PayFrequencyMonthly,
		PayAmount:        decimal.NewFromInt(3000),
		MonthlyIncome:    decimal.NewFromInt(3000),
		MonthlyExpenses:  decimal.NewFromInt(3000 - disposable),
		DisposableIncome: decimal.NewFromInt(disposable),
	}
}

func TestAffordabilityAdvisor_TierTable(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	cases := []struct {
		principal   int64
		comfortable int
		balanced    int
		aggressive  int
	}{
		{100, 4, 2, 1},
		{250, 6, 4, 2},
		{500, 8, 4, 2},
		{750, 10, 6, 3},
		{2000, 12, 8, 4},
	}

	for _, tc := range cases {
		suggestions := advisor.Suggest(decimal.NewFromInt(tc.principal), monthlyProfile(500))
		require.NotNil(t, suggestions, "principal %d", tc.principal)

		assert.Equal(t, tc.comfortable, suggestions.Comfortable.NumberOfPayments, "principal %d", tc.principal)
		assert.Equal(t, tc.balanced, suggestions.Balanced.NumberOfPayments, "principal %d", tc.principal)
		assert.Equal(t, tc.aggressive, suggestions.Aggressive.NumberOfPayments, "principal %d", tc.principal)
	}
}

func TestAffordabilityAdvisor_LargePrincipalBudgetPath(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	// 10000 with 1000/month disposable: balanced spends 22% (220/month),
	// raw count ceil(10000/220) = 46, clamped to the balanced cap of 12.
	suggestions := advisor.Suggest(decimal.NewFromInt(10000), monthlyProfile(1000))
	require.NotNil(t, suggestions)

	assert.Equal(t, 12, suggestions.Balanced.NumberOfPayments)
	assert.True(t, suggestions.Balanced.PaymentAmount.Equal(decimal.NewFromInt(834)),
		"payment should be ceil(10000/12) = 834, got %s", suggestions.Balanced.PaymentAmount)
	assert.Equal(t, valueobject.FrequencyMonthly, suggestions.Balanced.Frequency)
}

func TestAffordabilityAdvisor_CountOrderingInvariant(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	principals := []int64{50, 300, 900, 2000, 5000, 50000}
	disposables := []int64{100, 500, 2500, 10000}

	for _, p := range principals {
		for _, d := range disposables {
			suggestions := advisor.Suggest(decimal.NewFromInt(p), monthlyProfile(d))
			require.NotNil(t, suggestions)

			assert.GreaterOrEqual(t,
				suggestions.Comfortable.NumberOfPayments, suggestions.Balanced.NumberOfPayments,
				"principal %d disposable %d", p, d)
			assert.GreaterOrEqual(t,
				suggestions.Balanced.NumberOfPayments, suggestions.Aggressive.NumberOfPayments,
				"principal %d disposable %d", p, d)
		}
	}
}

func TestAffordabilityAdvisor_NoDisposableIncome(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	assert.Nil(t, advisor.Suggest(decimal.NewFromInt(500), monthlyProfile(0)))
	assert.Nil(t, advisor.Suggest(decimal.NewFromInt(500), monthlyProfile(-50)))
}

func TestAffordabilityAdvisor_NonPositivePrincipal(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	assert.Nil(t, advisor.Suggest(decimal.Zero, monthlyProfile(500)))
	assert.Nil(t, advisor.Suggest(decimal.NewFromInt(-100), monthlyProfile(500)))
}

func TestAffordabilityAdvisor_PercentOfDisposableCapped(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	// Aggressive on a tiny income: a single 100 payment against 30/month
	// disposable would be over 300%, reported as the 100 cap.
	suggestions := advisor.Suggest(decimal.NewFromInt(100), monthlyProfile(30))
	require.NotNil(t, suggestions)

	assert.Equal(t, 100, suggestions.Aggressive.PercentOfDisposable)
}

func TestAffordabilityAdvisor_ScheduleFrequencyFollowsPayCadence(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	profile := monthlyProfile(500)
	profile.PayFrequency = valueobject.PayFrequencySemimonthly

	suggestions := advisor.Suggest(decimal.NewFromInt(400), profile)
	require.NotNil(t, suggestions)

	// Semimonthly pay maps onto the biweekly installment cadence.
	assert.Equal(t, valueobject.FrequencyBiweekly, suggestions.Balanced.Frequency)
	assert.Equal(t, suggestions.Balanced.NumberOfPayments*2, suggestions.Balanced.WeeksToPayoff)
}

func TestAffordabilityAdvisor_TotalRepaymentCoversPrincipal(t *testing.T) {
	advisor := service.NewAffordabilityAdvisor()

	suggestions := advisor.Suggest(decimal.NewFromInt(997), monthlyProfile(500))
	require.NotNil(t, suggestions)

	for _, s := range []model.ComfortSuggestion{
		suggestions.Comfortable, suggestions.Balanced, suggestions.Aggressive,
	} {
		assert.True(t, s.TotalRepayment.GreaterThanOrEqual(decimal.NewFromInt(997)),
			"level %s should cover the principal", s.Level)
		assert.True(t, s.PaymentAmount.Mul(decimal.NewFromInt(int64(s.NumberOfPayments))).Equal(s.TotalRepayment))
	}
}
