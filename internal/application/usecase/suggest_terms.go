package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lendcircle/repayment-service/internal/application/dto"
	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/port"
	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// Suggestion sources reported on responses.
const (
	SuggestionSourceComputed = "computed"
	SuggestionSourceCache    = "cache"
)

// SuggestTermsUseCase runs the affordability advisor over a borrower's
// income snapshot. Results are cached: the advisor is deterministic, so
// identical inputs always produce identical suggestions.
type SuggestTermsUseCase struct {
	advisor *service.AffordabilityAdvisor
	cache   port.SuggestionCache
}

// NewSuggestTermsUseCase wires dependencies.
func NewSuggestTermsUseCase(advisor *service.AffordabilityAdvisor, cache port.SuggestionCache) *SuggestTermsUseCase {
	return &SuggestTermsUseCase{advisor: advisor, cache: cache}
}

// Execute returns the comfort-level suggestions for the request, or an
// unavailable response when the profile cannot drive suggestions.
func (uc *SuggestTermsUseCase) Execute(
	ctx context.Context,
	req dto.SuggestTermsRequest,
) (dto.SuggestTermsResponse, error) {
	// 1. Parse the pay cadence.
	payFrequency, err := valueobject.NewPayFrequency(req.PayFrequency)
	if err != nil {
		return dto.SuggestTermsResponse{}, fmt.Errorf("parse pay frequency: %w", err)
	}

	// 2. Serve from cache when the same inputs were seen before.
	key := suggestionCacheKey(req)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		var resp dto.SuggestTermsResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			resp.Source = SuggestionSourceCache
			return resp, nil
		}
		slog.Warn("discarding malformed cached suggestion", "key", key)
	}

	// 3. Run the advisor.
	profile := model.FinancialProfile{
		PayFrequency:     payFrequency,
		PayAmount:        req.PayAmount,
		MonthlyIncome:    req.MonthlyIncome,
		MonthlyExpenses:  req.MonthlyExpenses,
		DisposableIncome: req.DisposableIncome,
	}
	suggestions := uc.advisor.Suggest(req.Principal, profile)

	resp := dto.SuggestTermsResponse{Source: SuggestionSourceComputed}
	if suggestions != nil {
		resp.Available = true
		resp.Suggestions = &dto.SuggestionsResponse{
			Comfortable: toSuggestionResponse(suggestions.Comfortable),
			Balanced:    toSuggestionResponse(suggestions.Balanced),
			Aggressive:  toSuggestionResponse(suggestions.Aggressive),
		}
	}

	// 4. Cache the computed result. A cache write failure is not an error:
	// the caller still gets the computed suggestions.
	if payload, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, string(payload)); err != nil {
			slog.Warn("caching suggestion failed", "key", key, "error", err)
		}
	}

	return resp, nil
}

// suggestionCacheKey builds a deterministic key from every input that
// influences the advisor's output.
func suggestionCacheKey(req dto.SuggestTermsRequest) string {
	return fmt.Sprintf("suggestions:%s:%s:%s",
		req.Principal.String(), req.PayFrequency, req.DisposableIncome.String())
}

func toSuggestionResponse(s model.ComfortSuggestion) dto.SuggestionResponse {
	return dto.SuggestionResponse{
		Level:               s.Level.String(),
		Frequency:           s.Frequency.String(),
		PaymentAmount:       s.PaymentAmount,
		TotalRepayment:      s.TotalRepayment,
		NumberOfPayments:    s.NumberOfPayments,
		PercentOfDisposable: s.PercentOfDisposable,
		WeeksToPayoff:       s.WeeksToPayoff,
	}
}
