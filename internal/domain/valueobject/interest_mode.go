package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InterestMode – immutable value object
// ---------------------------------------------------------------------------

// InterestMode selects how interest accrues over the life of a loan.
//
// Simple mode applies the rate once against the principal as a flat
// loan-level charge. Compound mode accrues interest per period on the
// declining balance using standard amortization.
type InterestMode struct {
	value string
}

const (
	interestModeSimple   = "simple"
	interestModeCompound = "compound"
)

var (
	InterestModeSimple   = InterestMode{value: interestModeSimple}
	InterestModeCompound = InterestMode{value: interestModeCompound}
)

var validInterestModes = map[string]InterestMode{
	interestModeSimple:   InterestModeSimple,
	interestModeCompound: InterestModeCompound,
}

// NewInterestMode creates an InterestMode from a raw string.
func NewInterestMode(s string) (InterestMode, error) {
	v, ok := validInterestModes[s]
	if !ok {
		return InterestMode{}, fmt.Errorf("invalid interest mode: %q", s)
	}
	return v, nil
}

// String returns the string representation of the mode.
func (m InterestMode) String() string { return m.value }

// IsZero returns true if the mode has not been initialised.
func (m InterestMode) IsZero() bool { return m.value == "" }

// Equal returns true when both modes carry the same value.
func (m InterestMode) Equal(other InterestMode) bool { return m.value == other.value }
