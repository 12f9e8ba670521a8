package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/application/usecase"
	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func storedPlan(t *testing.T) model.RepaymentPlan {
	t.Helper()

	terms := model.LoanTerms{
		Principal:           decimal.NewFromInt(1000),
		InterestRatePercent: decimal.NewFromInt(10),
		InterestMode:        valueobject.InterestModeSimple,
		Frequency:           valueobject.FrequencyWeekly,
		InstallmentCount:    4,
		StartDate:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	plan, err := model.NewRepaymentPlan("loan-001", "borrower-001", terms, time.Now().UTC())
	require.NoError(t, err)
	return plan
}

func TestGetPlan_Execute(t *testing.T) {
	t.Run("finds plan by loan ID", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByLoanIDFunc: func(_ context.Context, loanID string) (model.RepaymentPlan, error) {
				assert.Equal(t, "loan-001", loanID)
				return plan, nil
			},
		}
		uc := usecase.NewGetPlanUseCase(planRepo)

		resp, err := uc.Execute(context.Background(), dto.GetPlanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, plan.ID(), resp.ID)
		assert.Len(t, resp.Schedule, 4)
	})

	t.Run("finds plan by plan ID", func(t *testing.T) {
		plan := storedPlan(t)
		planRepo := &mockPlanRepository{
			findByIDFunc: func(_ context.Context, id string) (model.RepaymentPlan, error) {
				assert.Equal(t, plan.ID(), id)
				return plan, nil
			},
		}
		uc := usecase.NewGetPlanUseCase(planRepo)

		resp, err := uc.Execute(context.Background(), dto.GetPlanRequest{PlanID: plan.ID()})

		require.NoError(t, err)
		assert.Equal(t, "loan-001", resp.LoanID)
	})

	t.Run("loan ID wins when both identifiers are set", func(t *testing.T) {
		plan := storedPlan(t)
		byLoanCalled := false
		planRepo := &mockPlanRepository{
			findByLoanIDFunc: func(_ context.Context, _ string) (model.RepaymentPlan, error) {
				byLoanCalled = true
				return plan, nil
			},
		}
		uc := usecase.NewGetPlanUseCase(planRepo)

		_, err := uc.Execute(context.Background(), dto.GetPlanRequest{
			PlanID: "some-plan", LoanID: "loan-001",
		})

		require.NoError(t, err)
		assert.True(t, byLoanCalled)
	})

	t.Run("fails without identifiers", func(t *testing.T) {
		uc := usecase.NewGetPlanUseCase(&mockPlanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetPlanRequest{})

		assert.ErrorIs(t, err, usecase.ErrPlanIdentifierMissing)
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := usecase.NewGetPlanUseCase(&mockPlanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetPlanRequest{PlanID: "missing"})

		require.Error(t, err)
	})
}
