package ports

import "context"

// Backend liveness as shown in the interface footer. Detail is diagnostic
// and may be empty.
type HealthStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Online reports whether the backend answered the probe at all.
func (h HealthStatus) Online() bool { return h.Status != "offline" }

// Port: best-effort backend liveness probe. Health never returns an error;
// any failure collapses to {Status: "offline"}. Liveness is advisory, not
// operation-blocking.
type HealthChecker interface {
	Health(ctx context.Context) HealthStatus
}
