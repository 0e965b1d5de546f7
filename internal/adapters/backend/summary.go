package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

const summaryFallback = "Failed to generate the route summary."

type summaryRequest struct {
	OptimizedRoute     []domain.Location `json:"optimized_route"`
	TotalDistanceKm    float64           `json:"total_distance_km"`
	TotalDurationHours float64           `json:"total_duration_hours"`
	WeatherAlerts      []string          `json:"weather_alerts,omitempty"`
	FullLog            json.RawMessage   `json:"full_log,omitempty"`
}

// SummarizeRoute asks the backend for a driver-facing prose summary of an
// optimized route. The backend wants hours; the optimizer reports minutes.
func (c *Client) SummarizeRoute(ctx context.Context, result *domain.OptimizationResult) (_ domain.RouteSummary, err error) {
	defer obs.Time(ctx, c.logger, "backend.SummarizeRoute")(&err)

	if result == nil || len(result.OptimizedRoute) == 0 {
		return domain.RouteSummary{}, apperror.Validation("No optimized route to summarize.")
	}

	stops := make([]domain.Location, len(result.OptimizedRoute))
	for i, s := range result.OptimizedRoute {
		stops[i] = domain.Location{
			Name:          s.Name,
			Lat:           s.Lat,
			Lon:           s.Lon,
			VisitSequence: s.VisitSequence,
		}
	}
	req := summaryRequest{
		OptimizedRoute: stops,
		FullLog:        result.FullLog,
	}
	if result.TotalDistanceKm.Valid {
		req.TotalDistanceKm = result.TotalDistanceKm.Value
	}
	if result.TotalDurationMin.Valid {
		req.TotalDurationHours = result.TotalDurationMin.Value / 60
	}

	var out domain.RouteSummary
	if err := c.send(ctx, http.MethodPost, "/route/summary", nil, req, &out); err != nil {
		return domain.RouteSummary{}, apperror.WithFallback(err, summaryFallback)
	}
	if out.Summary == "" {
		return domain.RouteSummary{}, apperror.WithFallback(errors.New("empty summary in response"), summaryFallback)
	}
	return out, nil
}
