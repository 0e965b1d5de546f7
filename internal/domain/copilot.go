package domain

// Driver-facing prose summary of an optimized route.
type RouteSummary struct {
	Status  string `json:"status"`
	Summary string `json:"summary"`
}

// Confirmation returned when a draft route is activated as a delivery
// manifest.
type Manifest struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	RouteID    int64  `json:"route_id"`
	ManifestID string `json:"manifest_id"`
	Driver     string `json:"driver"`
	CreatedAt  string `json:"created_at"`
}

// Aggregate progress counters for an active route.
type ProgressCounts struct {
	TotalStops         int     `json:"total_stops"`
	Completed          int     `json:"completed"`
	Pending            int     `json:"pending"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Live status of the session's active route as reported by the copilot
// agent. Active is false when no route has been activated yet.
type RouteProgress struct {
	Status          string         `json:"status"`
	Active          bool           `json:"active"`
	Driver          string         `json:"driver,omitempty"`
	LastUpdated     string         `json:"last_updated,omitempty"`
	RouteSummary    ProgressCounts `json:"route_summary,omitempty"`
	CurrentLocation string         `json:"current_location,omitempty"`
	NextStop        string         `json:"next_stop,omitempty"`
	PendingStops    []string       `json:"pending_stops,omitempty"`
	CompletedStops  []string       `json:"completed_stops,omitempty"`
}
