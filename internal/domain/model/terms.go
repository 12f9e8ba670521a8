package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// InvalidTermsError reports a contract violation in the inputs handed to the
// scheduler. Callers are expected to validate terms before invoking; hitting
// this error is a programming bug upstream, not a recoverable condition.
type InvalidTermsError struct {
	Field  string
	Reason string
}

func (e *InvalidTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s %s", e.Field, e.Reason)
}

// LoanTerms is the fully resolved input to schedule generation: amount, rate,
// cadence, and start date. Terms are immutable once a schedule has been
// generated from them.
type LoanTerms struct {
	Principal           decimal.Decimal
	InterestRatePercent decimal.Decimal
	InterestMode        valueobject.InterestMode
	Frequency           valueobject.Frequency
	InstallmentCount    int
	StartDate           time.Time
}

// Validate checks the scheduling contract. Partially filled terms (unset
// frequency, zero start date) are rejected the same way as out-of-range
// numbers.
func (t LoanTerms) Validate() error {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return &InvalidTermsError{Field: "principal", Reason: "must be positive"}
	}
	if t.InterestRatePercent.IsNegative() {
		return &InvalidTermsError{Field: "interestRatePercent", Reason: "must not be negative"}
	}
	if t.InstallmentCount < 1 {
		return &InvalidTermsError{Field: "installmentCount", Reason: "must be at least 1"}
	}
	if t.InterestMode.IsZero() {
		return &InvalidTermsError{Field: "interestMode", Reason: "is required"}
	}
	if t.Frequency.IsZero() {
		return &InvalidTermsError{Field: "frequency", Reason: "is required"}
	}
	if t.StartDate.IsZero() {
		return &InvalidTermsError{Field: "startDate", Reason: "is required"}
	}
	return nil
}
