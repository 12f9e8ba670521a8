package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func TestNewPayFrequency(t *testing.T) {
	for _, s := range []string{"weekly", "biweekly", "semimonthly", "monthly"} {
		f, err := valueobject.NewPayFrequency(s)
		require.NoError(t, err)
		assert.Equal(t, s, f.String())
	}

	_, err := valueobject.NewPayFrequency("quarterly")
	assert.Error(t, err)
}

func TestPayFrequency_MonthlyMultiplier(t *testing.T) {
	assert.True(t, valueobject.PayFrequencyWeekly.MonthlyMultiplier().Equal(decimal.NewFromFloat(4.33)))
	assert.True(t, valueobject.PayFrequencyBiweekly.MonthlyMultiplier().Equal(decimal.NewFromFloat(2.17)))
	assert.True(t, valueobject.PayFrequencySemimonthly.MonthlyMultiplier().Equal(decimal.NewFromInt(2)))
	assert.True(t, valueobject.PayFrequencyMonthly.MonthlyMultiplier().Equal(decimal.NewFromInt(1)))
}

func TestPayFrequency_ScheduleFrequency(t *testing.T) {
	assert.True(t, valueobject.PayFrequencyWeekly.ScheduleFrequency().Equal(valueobject.FrequencyWeekly))
	assert.True(t, valueobject.PayFrequencyBiweekly.ScheduleFrequency().Equal(valueobject.FrequencyBiweekly))
	// Semimonthly pay has no matching installment cadence; it maps to the
	// closest one.
	assert.True(t, valueobject.PayFrequencySemimonthly.ScheduleFrequency().Equal(valueobject.FrequencyBiweekly))
	assert.True(t, valueobject.PayFrequencyMonthly.ScheduleFrequency().Equal(valueobject.FrequencyMonthly))
}
