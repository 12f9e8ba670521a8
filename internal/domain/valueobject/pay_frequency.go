package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// PayFrequency – immutable value object
// ---------------------------------------------------------------------------

// PayFrequency is how often a borrower is paid. It differs from Frequency in
// that semimonthly pay exists but semimonthly installment schedules do not;
// semimonthly earners are scheduled biweekly.
type PayFrequency struct {
	value string
}

const (
	payFrequencyWeekly      = "weekly"
	payFrequencyBiweekly    = "biweekly"
	payFrequencySemimonthly = "semimonthly"
	payFrequencyMonthly     = "monthly"
)

var (
	PayFrequencyWeekly      = PayFrequency{value: payFrequencyWeekly}
	PayFrequencyBiweekly    = PayFrequency{value: payFrequencyBiweekly}
	PayFrequencySemimonthly = PayFrequency{value: payFrequencySemimonthly}
	PayFrequencyMonthly     = PayFrequency{value: payFrequencyMonthly}
)

var validPayFrequencies = map[string]PayFrequency{
	payFrequencyWeekly:      PayFrequencyWeekly,
	payFrequencyBiweekly:    PayFrequencyBiweekly,
	payFrequencySemimonthly: PayFrequencySemimonthly,
	payFrequencyMonthly:     PayFrequencyMonthly,
}

// Monthly-equivalent multipliers: a weekly paycheck arrives ~4.33 times per
// month, a biweekly one ~2.17 times.
var payFrequencyMultipliers = map[string]decimal.Decimal{
	payFrequencyWeekly:      decimal.NewFromFloat(4.33),
	payFrequencyBiweekly:    decimal.NewFromFloat(2.17),
	payFrequencySemimonthly: decimal.NewFromInt(2),
	payFrequencyMonthly:     decimal.NewFromInt(1),
}

// NewPayFrequency creates a PayFrequency from a raw string.
func NewPayFrequency(s string) (PayFrequency, error) {
	v, ok := validPayFrequencies[s]
	if !ok {
		return PayFrequency{}, fmt.Errorf("invalid pay frequency: %q", s)
	}
	return v, nil
}

// String returns the string representation of the pay frequency.
func (p PayFrequency) String() string { return p.value }

// IsZero returns true if the pay frequency has not been initialised.
func (p PayFrequency) IsZero() bool { return p.value == "" }

// Equal returns true when both pay frequencies carry the same value.
func (p PayFrequency) Equal(other PayFrequency) bool { return p.value == other.value }

// MonthlyMultiplier converts a per-paycheck amount to its monthly equivalent.
func (p PayFrequency) MonthlyMultiplier() decimal.Decimal {
	return payFrequencyMultipliers[p.value]
}

// ScheduleFrequency maps a pay cadence to the installment cadence suggestions
// are aligned with. Semimonthly pay maps to biweekly installments.
func (p PayFrequency) ScheduleFrequency() Frequency {
	switch p.value {
	case payFrequencyWeekly:
		return FrequencyWeekly
	case payFrequencyBiweekly, payFrequencySemimonthly:
		return FrequencyBiweekly
	default:
		return FrequencyMonthly
	}
}
