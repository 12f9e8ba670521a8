package port

import (
	"context"
	"errors"

	"github.com/lendcircle/repayment-service/internal/domain/event"
	"github.com/lendcircle/repayment-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ErrPlanNotFound is returned by repositories when no plan matches the
// given identifier.
var ErrPlanNotFound = errors.New("repayment plan not found")

// PlanRepository persists and retrieves repayment plans. Schedule rows are
// written once and treated as immutable afterwards.
type PlanRepository interface {
	Save(ctx context.Context, plan model.RepaymentPlan) error
	FindByID(ctx context.Context, id string) (model.RepaymentPlan, error)
	FindByLoanID(ctx context.Context, loanID string) (model.RepaymentPlan, error)
	FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.RepaymentPlan, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// SuggestionCache caches computed suggestion sets. The engine is
// deterministic, so identical inputs can safely be served from cache.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// FeePolicyProvider supplies the admin-configured platform fee policy.
type FeePolicyProvider interface {
	Policy(ctx context.Context) (model.FeePolicy, error)
}
