package usecase

import (
	"context"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/domain/service"
)

// GetPresetsUseCase lists the selectable schedule shapes for a principal.
type GetPresetsUseCase struct {
	presets *service.PresetGenerator
}

// NewGetPresetsUseCase wires dependencies.
func NewGetPresetsUseCase(presets *service.PresetGenerator) *GetPresetsUseCase {
	return &GetPresetsUseCase{presets: presets}
}

// Execute returns the ranked presets for the requested principal.
func (uc *GetPresetsUseCase) Execute(
	ctx context.Context,
	req dto.GetPresetsRequest,
) (dto.GetPresetsResponse, error) {
	presets := uc.presets.Presets(req.Principal)

	resp := dto.GetPresetsResponse{Presets: make([]dto.PresetResponse, 0, len(presets))}
	for _, p := range presets {
		resp.Presets = append(resp.Presets, dto.PresetResponse{
			Label:         p.Label,
			Frequency:     p.Frequency.String(),
			Installments:  p.Installments,
			PaymentAmount: p.PaymentAmount,
			Recommended:   p.Recommended,
		})
	}
	return resp, nil
}
