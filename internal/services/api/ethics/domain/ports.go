package domain

import (
	"context"

	"genailab/internal/core/bias"
)

// ServicePort is the ethics contract other modules can depend on
type ServicePort interface {
	Bias(ctx context.Context, text string) (BiasResult, error)
	Mitigation(ctx context.Context, r bias.Result) (MitigationResult, error)
}
