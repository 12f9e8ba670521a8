package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/domain/port"
	"github.com/lendcircle/repayment-service/internal/domain/service"
)

// ErrNonPositiveAmount is returned when a fee quote is requested for a zero
// or negative payment amount.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// QuoteFeeUseCase quotes the platform fee for a single payment amount under
// the current fee policy.
type QuoteFeeUseCase struct {
	calculator *service.PlatformFeeCalculator
	policies   port.FeePolicyProvider
}

// NewQuoteFeeUseCase wires dependencies.
func NewQuoteFeeUseCase(calculator *service.PlatformFeeCalculator, policies port.FeePolicyProvider) *QuoteFeeUseCase {
	return &QuoteFeeUseCase{calculator: calculator, policies: policies}
}

// Execute returns the fee breakdown for the requested amount.
func (uc *QuoteFeeUseCase) Execute(
	ctx context.Context,
	req dto.QuoteFeeRequest,
) (dto.QuoteFeeResponse, error) {
	if !req.Amount.IsPositive() {
		return dto.QuoteFeeResponse{}, ErrNonPositiveAmount
	}

	policy, err := uc.policies.Policy(ctx)
	if err != nil {
		return dto.QuoteFeeResponse{}, fmt.Errorf("load fee policy: %w", err)
	}

	calc := uc.calculator.Calculate(req.Amount, policy)

	return dto.QuoteFeeResponse{
		Amount:         req.Amount,
		PlatformFee:    calc.PlatformFee,
		GrossAmount:    calc.GrossAmount,
		NetAmount:      calc.NetAmount,
		FeeLabel:       calc.FeeLabel,
		FeeDescription: calc.FeeDescription,
	}, nil
}
