package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// FeePolicy is the admin-configured platform fee policy, supplied by the
// platform-configuration collaborator. A zero MinFee or MaxFee means
// "unbounded on that side".
type FeePolicy struct {
	Enabled     bool
	Type        valueobject.FeeType
	Percentage  decimal.Decimal
	FixedAmount decimal.Decimal
	MinFee      decimal.Decimal
	MaxFee      decimal.Decimal
}

// Validate rejects misconfigured policies. This runs at configuration-load
// time; the calculator itself tolerates a bad policy by treating MaxFee as
// authoritative.
func (p FeePolicy) Validate() error {
	if !p.Enabled {
		return nil
	}
	if p.Type.IsZero() {
		return fmt.Errorf("fee policy: type is required when fees are enabled")
	}
	if p.Percentage.IsNegative() {
		return fmt.Errorf("fee policy: percentage must not be negative, got %s", p.Percentage)
	}
	if p.FixedAmount.IsNegative() {
		return fmt.Errorf("fee policy: fixed amount must not be negative, got %s", p.FixedAmount)
	}
	if p.MinFee.IsNegative() || p.MaxFee.IsNegative() {
		return fmt.Errorf("fee policy: fee bounds must not be negative")
	}
	if p.MinFee.IsPositive() && p.MaxFee.IsPositive() && p.MinFee.GreaterThan(p.MaxFee) {
		return fmt.Errorf("fee policy: min fee %s exceeds max fee %s", p.MinFee, p.MaxFee)
	}
	return nil
}

// FeeCalculation is the fee breakdown for a single payment amount. Gross and
// net are both always computed from the same amount and fee: gross is what a
// payer must send when the fee is additive, net is what a receiver keeps when
// the fee is deducted. Which side the UI surfaces is the caller's concern.
type FeeCalculation struct {
	GrossAmount    decimal.Decimal
	PlatformFee    decimal.Decimal
	NetAmount      decimal.Decimal
	FeeLabel       string
	FeeDescription string
}
