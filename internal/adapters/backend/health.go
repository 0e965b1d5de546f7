package backend

import (
	"context"
	"net/http"

	"logistics-copilot/internal/ports"
)

// probeHealth performs the actual liveness call. Internal callers keep the
// error so degraded states stay distinguishable; only the exported boundary
// collapses failures to a sentinel.
func (c *Client) probeHealth(ctx context.Context) (ports.HealthStatus, error) {
	var out ports.HealthStatus
	if err := c.send(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return ports.HealthStatus{}, err
	}
	if out.Status == "" {
		out.Status = "unknown"
	}
	return out, nil
}

// Health is the one fail-open exception to the layer's fail-fast posture:
// it never returns an error. Any failure, network or application, maps to
// {Status: "offline"} with the reason as diagnostic detail. Liveness is
// advisory and must not block operations.
func (c *Client) Health(ctx context.Context) ports.HealthStatus {
	status, err := c.probeHealth(ctx)
	if err != nil {
		return ports.HealthStatus{Status: "offline", Detail: err.Error()}
	}
	return status
}
