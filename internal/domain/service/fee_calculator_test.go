package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

func percentagePolicy() model.FeePolicy {
	return model.FeePolicy{
		Enabled:    true,
		Type:       valueobject.FeeTypePercentage,
		Percentage: decimal.NewFromInt(5),
		MinFee:     decimal.NewFromInt(10),
		MaxFee:     decimal.NewFromInt(25),
	}
}

func TestPlatformFeeCalculator_MinFeeFloor(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	// 5% of 100 is 5, below the 10 floor.
	result := calc.Calculate(decimal.NewFromInt(100), percentagePolicy())

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.GrossAmount.Equal(decimal.NewFromInt(110)))
	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(90)))
}

func TestPlatformFeeCalculator_MaxFeeCap(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	// 5% of 1000 is 50, above the 25 cap.
	result := calc.Calculate(decimal.NewFromInt(1000), percentagePolicy())

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(25)))
	assert.True(t, result.GrossAmount.Equal(decimal.NewFromInt(1025)))
	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(975)))
}

func TestPlatformFeeCalculator_WithinBounds(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	// 5% of 300 is 15, inside [10, 25].
	result := calc.Calculate(decimal.NewFromInt(300), percentagePolicy())

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(15)))
}

func TestPlatformFeeCalculator_MaxFeeAuthoritativeWhenBoundsConflict(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	policy := percentagePolicy()
	policy.MinFee = decimal.NewFromInt(40)
	policy.MaxFee = decimal.NewFromInt(25)

	result := calc.Calculate(decimal.NewFromInt(100), policy)

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(25)))
}

func TestPlatformFeeCalculator_FixedFee(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	policy := model.FeePolicy{
		Enabled:     true,
		Type:        valueobject.FeeTypeFixed,
		FixedAmount: decimal.NewFromFloat(2.50),
	}

	result := calc.Calculate(decimal.NewFromInt(60), policy)

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, result.GrossAmount.Equal(decimal.NewFromFloat(62.50)))
	assert.True(t, result.NetAmount.Equal(decimal.NewFromFloat(57.50)))
	assert.Contains(t, result.FeeDescription, "2.50")
}

func TestPlatformFeeCalculator_CombinedFee(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	policy := model.FeePolicy{
		Enabled:     true,
		Type:        valueobject.FeeTypeCombined,
		FixedAmount: decimal.NewFromInt(2),
		Percentage:  decimal.NewFromInt(3),
	}

	// 2 + 3% of 200 = 8.
	result := calc.Calculate(decimal.NewFromInt(200), policy)

	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(8)))
}

func TestPlatformFeeCalculator_Disabled(t *testing.T) {
	calc := service.NewPlatformFeeCalculator()

	policy := percentagePolicy()
	policy.Enabled = false

	result := calc.Calculate(decimal.NewFromInt(500), policy)

	assert.True(t, result.PlatformFee.Equal(decimal.Zero))
	assert.True(t, result.GrossAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "No platform fee", result.FeeLabel)
}

func TestFeePolicy_Validate(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		assert.NoError(t, percentagePolicy().Validate())
	})

	t.Run("disabled policy skips checks", func(t *testing.T) {
		policy := model.FeePolicy{Enabled: false, Percentage: decimal.NewFromInt(-5)}
		assert.NoError(t, policy.Validate())
	})

	t.Run("negative percentage", func(t *testing.T) {
		policy := percentagePolicy()
		policy.Percentage = decimal.NewFromInt(-1)
		assert.Error(t, policy.Validate())
	})

	t.Run("min above max", func(t *testing.T) {
		policy := percentagePolicy()
		policy.MinFee = decimal.NewFromInt(30)
		policy.MaxFee = decimal.NewFromInt(20)
		assert.Error(t, policy.Validate())
	})

	t.Run("missing type", func(t *testing.T) {
		policy := percentagePolicy()
		policy.Type = valueobject.FeeType{}
		assert.Error(t, policy.Validate())
	})
}
