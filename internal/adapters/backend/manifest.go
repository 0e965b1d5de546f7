package backend

import (
	"context"
	"net/http"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

const manifestFallback = "Failed to create the delivery manifest."

type manifestRequest struct {
	SessionID  string `json:"session_id"`
	RouteID    int64  `json:"route_id"`
	DriverName string `json:"driver_name,omitempty"`
}

// CreateManifest activates a previously optimized draft route as the
// session's delivery manifest. routeID comes from the optimization result.
func (c *Client) CreateManifest(ctx context.Context, routeID int64) (_ domain.Manifest, err error) {
	defer obs.Time(ctx, c.logger, "backend.CreateManifest")(&err)

	if routeID <= 0 {
		return domain.Manifest{}, apperror.Validation("Optimize a route before creating a manifest.")
	}

	req := manifestRequest{
		SessionID:  c.sessionID,
		RouteID:    routeID,
		DriverName: c.driverName,
	}

	var out domain.Manifest
	if err := c.send(ctx, http.MethodPost, "/create-manifest", nil, req, &out); err != nil {
		return domain.Manifest{}, apperror.WithFallback(err, manifestFallback)
	}
	return out, nil
}
