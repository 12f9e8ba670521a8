package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FeeType – immutable value object
// ---------------------------------------------------------------------------

// FeeType selects how the platform fee for a payment is computed.
type FeeType struct {
	value string
}

const (
	feeTypeFixed      = "fixed"
	feeTypePercentage = "percentage"
	feeTypeCombined   = "combined"
)

var (
	FeeTypeFixed      = FeeType{value: feeTypeFixed}
	FeeTypePercentage = FeeType{value: feeTypePercentage}
	FeeTypeCombined   = FeeType{value: feeTypeCombined}
)

var validFeeTypes = map[string]FeeType{
	feeTypeFixed:      FeeTypeFixed,
	feeTypePercentage: FeeTypePercentage,
	feeTypeCombined:   FeeTypeCombined,
}

// NewFeeType creates a FeeType from a raw string.
func NewFeeType(s string) (FeeType, error) {
	v, ok := validFeeTypes[s]
	if !ok {
		return FeeType{}, fmt.Errorf("invalid fee type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the fee type.
func (t FeeType) String() string { return t.value }

// IsZero returns true if the fee type has not been initialised.
func (t FeeType) IsZero() bool { return t.value == "" }

// Equal returns true when both fee types carry the same value.
func (t FeeType) Equal(other FeeType) bool { return t.value == other.value }
