package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lendcircle/repayment-service/internal/application/usecase"
	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/port"
	"github.com/lendcircle/repayment-service/pkg/observability"
)

// RepaymentHandler exposes repayment operations over gRPC.
type RepaymentHandler struct {
	UnimplementedRepaymentServiceServer

	createPlan   *usecase.CreatePlanUseCase
	getPlan      *usecase.GetPlanUseCase
	suggestTerms *usecase.SuggestTermsUseCase
	getPresets   *usecase.GetPresetsUseCase
	quoteFee     *usecase.QuoteFeeUseCase
	metrics      *observability.Metrics
	logger       *slog.Logger
}

// NewRepaymentHandler creates a new handler with all use-case dependencies.
func NewRepaymentHandler(
	createPlan *usecase.CreatePlanUseCase,
	getPlan *usecase.GetPlanUseCase,
	suggestTerms *usecase.SuggestTermsUseCase,
	getPresets *usecase.GetPresetsUseCase,
	quoteFee *usecase.QuoteFeeUseCase,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *RepaymentHandler {
	return &RepaymentHandler{
		createPlan:   createPlan,
		getPlan:      getPlan,
		suggestTerms: suggestTerms,
		getPresets:   getPresets,
		quoteFee:     quoteFee,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreatePlan creates a repayment plan for a loan.
func (h *RepaymentHandler) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*CreatePlanResponse, error) {
	resp, err := h.createPlan.Execute(ctx, *req)
	if err != nil {
		h.logger.ErrorContext(ctx, "create plan failed", "loan_id", req.LoanID, "error", err)
		return nil, toStatusError(err)
	}

	h.metrics.SchedulesGenerated.Inc()
	h.logger.InfoContext(ctx, "repayment plan created",
		"plan_id", resp.ID, "loan_id", resp.LoanID, "installments", resp.InstallmentCount)
	return &resp, nil
}

// GetPlan retrieves a repayment plan by plan ID or loan ID.
func (h *RepaymentHandler) GetPlan(ctx context.Context, req *GetPlanRequest) (*GetPlanResponse, error) {
	resp, err := h.getPlan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// SuggestTerms runs the affordability advisor over an income snapshot.
func (h *RepaymentHandler) SuggestTerms(ctx context.Context, req *SuggestTermsRequest) (*SuggestTermsResponse, error) {
	resp, err := h.suggestTerms.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}

	h.metrics.SuggestionsServed.WithLabelValues(resp.Source).Inc()
	return &resp, nil
}

// GetPresets lists the selectable schedule shapes for a principal.
func (h *RepaymentHandler) GetPresets(ctx context.Context, req *GetPresetsRequest) (*GetPresetsResponse, error) {
	resp, err := h.getPresets.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// QuoteFee returns the platform fee breakdown for a payment amount.
func (h *RepaymentHandler) QuoteFee(ctx context.Context, req *QuoteFeeRequest) (*QuoteFeeResponse, error) {
	resp, err := h.quoteFee.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}

	h.metrics.FeesQuoted.Inc()
	return &resp, nil
}

// toStatusError maps domain and application errors to gRPC status codes.
func toStatusError(err error) error {
	var invalidTerms *model.InvalidTermsError
	switch {
	case errors.As(err, &invalidTerms),
		errors.Is(err, usecase.ErrPlanIdentifierMissing),
		errors.Is(err, usecase.ErrNonPositiveAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrPlanNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
