package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// PlatformFeeCalculator applies the platform's fee policy to a single
// payment amount. The policy comes from platform configuration; the
// calculator never reads configuration itself.
type PlatformFeeCalculator struct{}

func NewPlatformFeeCalculator() *PlatformFeeCalculator {
	return &PlatformFeeCalculator{}
}

// Calculate returns the fee breakdown for the amount under the policy.
// A disabled policy yields a zero fee with gross == net == amount.
func (c *PlatformFeeCalculator) Calculate(amount decimal.Decimal, policy model.FeePolicy) model.FeeCalculation {
	if !policy.Enabled {
		return model.FeeCalculation{
			GrossAmount:    amount,
			PlatformFee:    decimal.Zero,
			NetAmount:      amount,
			FeeLabel:       "No platform fee",
			FeeDescription: "Platform fees are currently disabled",
		}
	}

	fee := c.rawFee(amount, policy)

	// Raise to the floor before lowering to the cap: when the two bounds
	// conflict, the cap is authoritative.
	if policy.MinFee.IsPositive() && fee.LessThan(policy.MinFee) {
		fee = policy.MinFee
	}
	if policy.MaxFee.IsPositive() && fee.GreaterThan(policy.MaxFee) {
		fee = policy.MaxFee
	}

	return model.FeeCalculation{
		GrossAmount:    amount.Add(fee),
		PlatformFee:    fee,
		NetAmount:      amount.Sub(fee),
		FeeLabel:       "Platform fee",
		FeeDescription: c.describe(policy),
	}
}

func (c *PlatformFeeCalculator) rawFee(amount decimal.Decimal, policy model.FeePolicy) decimal.Decimal {
	switch policy.Type {
	case valueobject.FeeTypeFixed:
		return policy.FixedAmount.Round(2)
	case valueobject.FeeTypePercentage:
		return amount.Mul(policy.Percentage).Div(oneHundred).Round(2)
	case valueobject.FeeTypeCombined:
		return policy.FixedAmount.Add(amount.Mul(policy.Percentage).Div(oneHundred)).Round(2)
	default:
		return decimal.Zero
	}
}

func (c *PlatformFeeCalculator) describe(policy model.FeePolicy) string {
	switch policy.Type {
	case valueobject.FeeTypeFixed:
		return fmt.Sprintf("Fixed fee of %s per payment", policy.FixedAmount.StringFixed(2))
	case valueobject.FeeTypePercentage:
		return fmt.Sprintf("%s%% of each payment", policy.Percentage.String())
	case valueobject.FeeTypeCombined:
		return fmt.Sprintf("%s plus %s%% of each payment", policy.FixedAmount.StringFixed(2), policy.Percentage.String())
	default:
		return ""
	}
}
