package ports

import (
	"context"
	"logistics-copilot/internal/domain"
)

// Port: turns a set of locations into an optimized visiting order plus
// distance/time metrics. Both entry flows (text and map) depend on this one
// interface, so there is exactly one code path that can produce an
// optimization request.
type Optimizer interface {
	// Optimize the visiting order for the given locations. Entries without a
	// visit_sequence are normalized to positional order before transmission.
	OptimizeRoute(ctx context.Context, locations []domain.Location) (*domain.OptimizationResult, error)
}
