package backend

import (
	"context"
	"net/http"
	"net/url"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

const progressFallback = "Failed to fetch route progress."

// RouteProgress reads the live status of the session's active route.
func (c *Client) RouteProgress(ctx context.Context) (_ domain.RouteProgress, err error) {
	defer obs.Time(ctx, c.logger, "backend.RouteProgress")(&err)

	query := url.Values{}
	query.Set("session_id", c.sessionID)

	var out domain.RouteProgress
	if err := c.send(ctx, http.MethodGet, "/agent/status", query, nil, &out); err != nil {
		return domain.RouteProgress{}, apperror.WithFallback(err, progressFallback)
	}
	return out, nil
}
