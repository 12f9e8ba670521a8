package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ComfortLevel – immutable value object
// ---------------------------------------------------------------------------

// ComfortLevel names a point on the risk/speed tradeoff of a repayment plan.
// Comfortable spreads the loan over the most installments, aggressive over
// the fewest. The ordering comfortable > balanced > aggressive (by installment
// count) is an invariant of every suggestion the advisor produces.
type ComfortLevel struct {
	value string
}

const (
	comfortLevelComfortable = "comfortable"
	comfortLevelBalanced    = "balanced"
	comfortLevelAggressive  = "aggressive"
)

var (
	ComfortLevelComfortable = ComfortLevel{value: comfortLevelComfortable}
	ComfortLevelBalanced    = ComfortLevel{value: comfortLevelBalanced}
	ComfortLevelAggressive  = ComfortLevel{value: comfortLevelAggressive}
)

var validComfortLevels = map[string]ComfortLevel{
	comfortLevelComfortable: ComfortLevelComfortable,
	comfortLevelBalanced:    ComfortLevelBalanced,
	comfortLevelAggressive:  ComfortLevelAggressive,
}

// NewComfortLevel creates a ComfortLevel from a raw string.
func NewComfortLevel(s string) (ComfortLevel, error) {
	v, ok := validComfortLevels[s]
	if !ok {
		return ComfortLevel{}, fmt.Errorf("invalid comfort level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the level.
func (c ComfortLevel) String() string { return c.value }

// IsZero returns true if the level has not been initialised.
func (c ComfortLevel) IsZero() bool { return c.value == "" }

// Equal returns true when both levels carry the same value.
func (c ComfortLevel) Equal(other ComfortLevel) bool { return c.value == other.value }
