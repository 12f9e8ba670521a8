package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/port"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// CreatePlanUseCase orchestrates repayment plan creation: term validation,
// schedule generation, persistence, and event publication.
type CreatePlanUseCase struct {
	planRepo  port.PlanRepository
	publisher port.EventPublisher
}

// NewCreatePlanUseCase wires dependencies.
func NewCreatePlanUseCase(planRepo port.PlanRepository, publisher port.EventPublisher) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, publisher: publisher}
}

// Execute creates and persists a repayment plan for a loan.
func (uc *CreatePlanUseCase) Execute(
	ctx context.Context,
	req dto.CreatePlanRequest,
) (dto.PlanResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the raw term inputs into value objects.
	mode, err := valueobject.NewInterestMode(req.InterestMode)
	if err != nil {
		return dto.PlanResponse{}, fmt.Errorf("parse interest mode: %w", err)
	}
	frequency, err := valueobject.NewFrequency(req.Frequency)
	if err != nil {
		return dto.PlanResponse{}, fmt.Errorf("parse frequency: %w", err)
	}

	terms := model.LoanTerms{
		Principal:           req.Principal,
		InterestRatePercent: req.InterestRatePercent,
		InterestMode:        mode,
		Frequency:           frequency,
		InstallmentCount:    req.InstallmentCount,
		StartDate:           req.StartDate,
	}

	// 2. Create the plan aggregate; this validates terms and generates the
	// full schedule.
	plan, err := model.NewRepaymentPlan(req.LoanID, req.BorrowerID, terms, now)
	if err != nil {
		return dto.PlanResponse{}, fmt.Errorf("create plan: %w", err)
	}

	// 3. Persist.
	if err := uc.planRepo.Save(ctx, plan); err != nil {
		return dto.PlanResponse{}, fmt.Errorf("save plan: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, plan.DomainEvents()...); err != nil {
		return dto.PlanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPlanResponse(plan), nil
}

func toPlanResponse(plan model.RepaymentPlan) dto.PlanResponse {
	schedule := plan.Schedule()
	items := make([]dto.ScheduleItemResponse, 0, len(schedule))
	for _, item := range schedule {
		items = append(items, dto.ScheduleItemResponse{
			Period:           item.Period,
			DueDate:          item.DueDate,
			TotalAmount:      item.TotalAmount,
			PrincipalPortion: item.PrincipalPortion,
			InterestPortion:  item.InterestPortion,
			RemainingBalance: item.RemainingBalance,
			IsPaid:           item.IsPaid,
			PaidAt:           item.PaidAt,
		})
	}

	terms := plan.Terms()
	return dto.PlanResponse{
		ID:                  plan.ID(),
		LoanID:              plan.LoanID(),
		BorrowerID:          plan.BorrowerID(),
		Principal:           terms.Principal,
		InterestRatePercent: terms.InterestRatePercent,
		InterestMode:        terms.InterestMode.String(),
		Frequency:           terms.Frequency.String(),
		InstallmentCount:    terms.InstallmentCount,
		StartDate:           terms.StartDate,
		TotalInterest:       plan.TotalInterest(),
		TotalRepayment:      plan.TotalRepayment(),
		Schedule:            items,
		CreatedAt:           plan.CreatedAt(),
	}
}
