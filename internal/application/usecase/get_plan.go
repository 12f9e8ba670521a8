package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/domain/port"
)

// ErrPlanIdentifierMissing is returned when a lookup request names neither a
// plan ID nor a loan ID.
var ErrPlanIdentifierMissing = errors.New("plan_id or loan_id is required")

// GetPlanUseCase retrieves a repayment plan by plan ID or loan ID.
type GetPlanUseCase struct {
	planRepo port.PlanRepository
}

// NewGetPlanUseCase wires dependencies.
func NewGetPlanUseCase(planRepo port.PlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

// Execute returns a plan response for the given identifier. LoanID wins when
// both identifiers are present.
func (uc *GetPlanUseCase) Execute(
	ctx context.Context,
	req dto.GetPlanRequest,
) (dto.PlanResponse, error) {
	switch {
	case req.LoanID != "":
		plan, err := uc.planRepo.FindByLoanID(ctx, req.LoanID)
		if err != nil {
			return dto.PlanResponse{}, fmt.Errorf("find plan by loan: %w", err)
		}
		return toPlanResponse(plan), nil
	case req.PlanID != "":
		plan, err := uc.planRepo.FindByID(ctx, req.PlanID)
		if err != nil {
			return dto.PlanResponse{}, fmt.Errorf("find plan: %w", err)
		}
		return toPlanResponse(plan), nil
	default:
		return dto.PlanResponse{}, ErrPlanIdentifierMissing
	}
}
