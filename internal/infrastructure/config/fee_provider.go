package config

import (
	"context"

	"github.com/lendcircle/repayment-service/internal/domain/model"
)

// StaticFeePolicyProvider implements port.FeePolicyProvider with a policy
// fixed at startup. Policy changes take effect on restart.
type StaticFeePolicyProvider struct {
	policy model.FeePolicy
}

// NewStaticFeePolicyProvider wraps an already-validated policy.
func NewStaticFeePolicyProvider(policy model.FeePolicy) *StaticFeePolicyProvider {
	return &StaticFeePolicyProvider{policy: policy}
}

// Policy returns the configured fee policy.
func (p *StaticFeePolicyProvider) Policy(_ context.Context) (model.FeePolicy, error) {
	return p.policy, nil
}
