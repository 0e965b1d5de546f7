package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A single stop in an optimized route, in final driving order.
type OptimizedStop struct {
	Order         int     `json:"order"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	VisitSequence int     `json:"visit_sequence"`
}

// Metric is a numeric value the optimizer may report as the literal string
// "N/A" when no distance matrix was available. Valid is false in that case.
type Metric struct {
	Value float64
	Valid bool
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = Metric{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("unmarshal metric: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			// "N/A" and friends
			*m = Metric{}
			return nil
		}
		*m = Metric{Value: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal metric: %w", err)
	}
	*m = Metric{Value: v, Valid: true}
	return nil
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(m.Value)
}

func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(m.Value, 'f', 2, 64)
}

// The optimizer's answer: a reordered visiting sequence plus aggregate
// distance/time metrics. Fields beyond the ones below are owned by the remote
// service; FullLog is carried opaquely so it can be passed back verbatim to
// the summary endpoint.
type OptimizationResult struct {
	Status               string          `json:"status"`
	OptimizedRoute       []OptimizedStop `json:"optimized_route"`
	TimeWindowViolations []string        `json:"time_window_violations,omitempty"`
	TotalDistanceKm      Metric          `json:"total_distance_km"`
	TotalDurationMin     Metric          `json:"total_duration_min"`
	RouteID              int64           `json:"route_id,omitempty"`
	Message              string          `json:"message,omitempty"`
	FullLog              json.RawMessage `json:"full_log,omitempty"`
}

// StopNames returns the optimized visiting order as location names.
func (r *OptimizationResult) StopNames() []string {
	names := make([]string, len(r.OptimizedRoute))
	for i, s := range r.OptimizedRoute {
		names[i] = s.Name
	}
	return names
}

// CoversExactly reports whether the result visits exactly the submitted
// locations: optimization reorders stops, it never adds or drops them.
// Comparison is by name multiset.
func (r *OptimizationResult) CoversExactly(locs []Location) bool {
	if len(r.OptimizedRoute) != len(locs) {
		return false
	}
	got := r.StopNames()
	want := make([]string, len(locs))
	for i, loc := range locs {
		want[i] = loc.Name
	}
	sort.Strings(got)
	sort.Strings(want)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
