package backend

import (
	"context"
	"net/http"
	"net/url"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

const optimizeFallback = "Failed to optimize the route."

// OptimizeRoute submits locations for optimization. Entries missing a
// visit_sequence are normalized to positional order first; this is the single
// place both entry flows rely on for a well-formed request.
func (c *Client) OptimizeRoute(ctx context.Context, locations []domain.Location) (_ *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, c.logger, "backend.OptimizeRoute")(&err)

	sequenced := domain.SequenceLocations(locations)
	req := domain.OptimizationRequest{ParsedLocations: sequenced}

	query := url.Values{}
	if c.sessionID != "" {
		query.Set("session_id", c.sessionID)
	}

	var out domain.OptimizationResult
	if err := c.send(ctx, http.MethodPost, "/optimize-route", query, req, &out); err != nil {
		return nil, apperror.WithFallback(err, optimizeFallback)
	}

	// The optimizer reorders stops, it never adds or drops them. A mismatch
	// is the backend's bug; surface it in the logs, not to the user.
	if len(out.OptimizedRoute) > 0 && !out.CoversExactly(sequenced) {
		c.logger.Warn("optimizer returned a different stop set",
			"req_id", obs.RequestID(ctx),
			"submitted", len(sequenced), "returned", len(out.OptimizedRoute))
	}

	return &out, nil
}
