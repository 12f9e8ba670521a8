package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Frequency – immutable value object
// ---------------------------------------------------------------------------

// Frequency represents the cadence of scheduled installments.
type Frequency struct {
	value string
}

const (
	frequencyWeekly   = "weekly"
	frequencyBiweekly = "biweekly"
	frequencyMonthly  = "monthly"
)

var (
	FrequencyWeekly   = Frequency{value: frequencyWeekly}
	FrequencyBiweekly = Frequency{value: frequencyBiweekly}
	FrequencyMonthly  = Frequency{value: frequencyMonthly}
)

var validFrequencies = map[string]Frequency{
	frequencyWeekly:   FrequencyWeekly,
	frequencyBiweekly: FrequencyBiweekly,
	frequencyMonthly:  FrequencyMonthly,
}

// NewFrequency creates a Frequency from a raw string.
func NewFrequency(s string) (Frequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return Frequency{}, fmt.Errorf("invalid frequency: %q", s)
	}
	return v, nil
}

// String returns the string representation of the frequency.
func (f Frequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f Frequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f Frequency) Equal(other Frequency) bool { return f.value == other.value }

// PeriodsPerYear returns how many installment periods fit in a year, used to
// derive per-period interest rates in compound mode.
func (f Frequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyWeekly:
		return 52
	case frequencyBiweekly:
		return 26
	default:
		return 12
	}
}

// WeeksPerPayment returns the approximate number of weeks between installments.
func (f Frequency) WeeksPerPayment() int {
	switch f.value {
	case frequencyWeekly:
		return 1
	case frequencyBiweekly:
		return 2
	default:
		return 4
	}
}
