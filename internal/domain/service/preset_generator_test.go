package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func TestPresetGenerator_TierPresets(t *testing.T) {
	gen := service.NewPresetGenerator()

	presets := gen.Presets(decimal.NewFromInt(750))
	require.Len(t, presets, 3)

	// Fastest payoff first, mirroring the advisor's tier for 501..1000.
	assert.Equal(t, 3, presets[0].Installments)
	assert.Equal(t, 6, presets[1].Installments)
	assert.Equal(t, 10, presets[2].Installments)

	for _, p := range presets {
		assert.Equal(t, valueobject.FrequencyBiweekly, p.Frequency)
		assert.True(t, p.PaymentAmount.Mul(decimal.NewFromInt(int64(p.Installments))).
			GreaterThanOrEqual(decimal.NewFromInt(750)),
			"preset %q should cover the principal", p.Label)
	}
}

func TestPresetGenerator_ExactlyOneRecommended(t *testing.T) {
	gen := service.NewPresetGenerator()

	for _, principal := range []int64{50, 200, 400, 800, 1500, 5000} {
		presets := gen.Presets(decimal.NewFromInt(principal))
		require.NotEmpty(t, presets, "principal %d", principal)

		recommended := 0
		for _, p := range presets {
			if p.Recommended {
				recommended++
				// The balanced shape is the recommended one.
				assert.Equal(t, presets[1].Installments, p.Installments)
			}
		}
		assert.Equal(t, 1, recommended, "principal %d", principal)
	}
}

func TestPresetGenerator_SinglePaymentLabel(t *testing.T) {
	gen := service.NewPresetGenerator()

	presets := gen.Presets(decimal.NewFromInt(80))
	require.Len(t, presets, 3)

	assert.Equal(t, 1, presets[0].Installments)
	assert.Equal(t, "Single payment", presets[0].Label)
	assert.Equal(t, "2 weekly payments", presets[1].Label)
	assert.Equal(t, "4 weekly payments", presets[2].Label)
}

func TestPresetGenerator_LargePrincipal(t *testing.T) {
	gen := service.NewPresetGenerator()

	presets := gen.Presets(decimal.NewFromInt(12000))
	require.Len(t, presets, 3)

	assert.Equal(t, 6, presets[0].Installments)
	assert.Equal(t, 12, presets[1].Installments)
	assert.Equal(t, 24, presets[2].Installments)
	assert.True(t, presets[1].Recommended)
	for _, p := range presets {
		assert.Equal(t, valueobject.FrequencyMonthly, p.Frequency)
	}
}

func TestPresetGenerator_NonPositivePrincipal(t *testing.T) {
	gen := service.NewPresetGenerator()

	assert.Empty(t, gen.Presets(decimal.Zero))
	assert.Empty(t, gen.Presets(decimal.NewFromInt(-10)))
}
