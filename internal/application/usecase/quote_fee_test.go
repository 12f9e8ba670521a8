package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/application/usecase"
	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func TestQuoteFee_Execute(t *testing.T) {
	policy := model.FeePolicy{
		Enabled:    true,
		Type:       valueobject.FeeTypePercentage,
		Percentage: decimal.NewFromInt(5),
		MinFee:     decimal.NewFromInt(10),
		MaxFee:     decimal.NewFromInt(25),
	}

	t.Run("quotes a clamped percentage fee", func(t *testing.T) {
		uc := usecase.NewQuoteFeeUseCase(
			service.NewPlatformFeeCalculator(),
			&mockFeePolicyProvider{policy: policy},
		)

		resp, err := uc.Execute(context.Background(), dto.QuoteFeeRequest{
			Amount: decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.True(t, resp.PlatformFee.Equal(decimal.NewFromInt(10)))
		assert.True(t, resp.GrossAmount.Equal(decimal.NewFromInt(110)))
		assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(90)))
		assert.Equal(t, "Platform fee", resp.FeeLabel)
	})

	t.Run("quotes zero when fees are disabled", func(t *testing.T) {
		uc := usecase.NewQuoteFeeUseCase(
			service.NewPlatformFeeCalculator(),
			&mockFeePolicyProvider{policy: model.FeePolicy{Enabled: false}},
		)

		resp, err := uc.Execute(context.Background(), dto.QuoteFeeRequest{
			Amount: decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.True(t, resp.PlatformFee.Equal(decimal.Zero))
		assert.True(t, resp.GrossAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		uc := usecase.NewQuoteFeeUseCase(
			service.NewPlatformFeeCalculator(),
			&mockFeePolicyProvider{policy: policy},
		)

		_, err := uc.Execute(context.Background(), dto.QuoteFeeRequest{Amount: decimal.Zero})
		assert.ErrorIs(t, err, usecase.ErrNonPositiveAmount)
	})

	t.Run("fails when the policy cannot be loaded", func(t *testing.T) {
		uc := usecase.NewQuoteFeeUseCase(
			service.NewPlatformFeeCalculator(),
			&mockFeePolicyProvider{policyErr: assert.AnError},
		)

		_, err := uc.Execute(context.Background(), dto.QuoteFeeRequest{
			Amount: decimal.NewFromInt(100),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load fee policy")
	})
}

func TestGetPresets_Execute(t *testing.T) {
	uc := usecase.NewGetPresetsUseCase(service.NewPresetGenerator())

	resp, err := uc.Execute(context.Background(), dto.GetPresetsRequest{
		Principal: decimal.NewFromInt(750),
	})

	require.NoError(t, err)
	require.Len(t, resp.Presets, 3)

	recommended := 0
	for _, p := range resp.Presets {
		if p.Recommended {
			recommended++
		}
		assert.Equal(t, "biweekly", p.Frequency)
	}
	assert.Equal(t, 1, recommended)
}
