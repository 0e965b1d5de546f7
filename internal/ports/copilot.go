package ports

import (
	"context"
	"logistics-copilot/internal/domain"
)

// Port: generates a driver-facing prose summary for an optimized route.
type Summarizer interface {
	SummarizeRoute(ctx context.Context, result *domain.OptimizationResult) (domain.RouteSummary, error)
}

// Port: activates a draft route as a delivery manifest bound to the session.
type ManifestCreator interface {
	CreateManifest(ctx context.Context, routeID int64) (domain.Manifest, error)
}

// Port: reads live progress of the session's active route.
type ProgressReader interface {
	RouteProgress(ctx context.Context) (domain.RouteProgress, error)
}
