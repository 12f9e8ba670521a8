package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// PresetGenerator produces the selectable schedule shapes offered when no
// financial profile exists. Presets share the same tier table as the
// affordability advisor so the two paths never disagree about what a
// reasonable plan length looks like.
type PresetGenerator struct{}

func NewPresetGenerator() *PresetGenerator {
	return &PresetGenerator{}
}

// Presets returns the ranked candidates for the principal, fastest payoff
// first. Exactly one preset is marked recommended (the balanced shape).
// A non-positive principal yields no presets.
func (g *PresetGenerator) Presets(principal decimal.Decimal) []model.RepaymentPreset {
	if !principal.IsPositive() {
		return nil
	}

	frequency := valueobject.FrequencyMonthly
	counts := []struct {
		installments int
		recommended  bool
	}{
		{largePrincipalCounts[valueobject.ComfortLevelAggressive], false},
		{largePrincipalCounts[valueobject.ComfortLevelBalanced], true},
		{largePrincipalCounts[valueobject.ComfortLevelComfortable], false},
	}

	if tier, ok := findTier(principal); ok {
		frequency = tier.frequency
		counts = []struct {
			installments int
			recommended  bool
		}{
			{tier.aggressive, false},
			{tier.balanced, true},
			{tier.comfortable, false},
		}
	}

	presets := make([]model.RepaymentPreset, 0, len(counts))
	for _, c := range counts {
		presets = append(presets, model.RepaymentPreset{
			Label:         presetLabel(c.installments, frequency),
			Frequency:     frequency,
			Installments:  c.installments,
			PaymentAmount: principal.Div(decimal.NewFromInt(int64(c.installments))).Ceil(),
			Recommended:   c.recommended,
		})
	}
	return presets
}

func presetLabel(installments int, frequency valueobject.Frequency) string {
	if installments == 1 {
		return "Single payment"
	}
	switch frequency {
	case valueobject.FrequencyWeekly:
		return fmt.Sprintf("%d weekly payments", installments)
	case valueobject.FrequencyBiweekly:
		return fmt.Sprintf("%d biweekly payments", installments)
	default:
		return fmt.Sprintf("%d monthly payments", installments)
	}
}
