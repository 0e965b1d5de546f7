package backend

import (
	"context"
	"fmt"
	"strings"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/ports"
)

// MockBackend is an in-memory backend for tests and the --demo mode. It
// implements every port the real client does. Calls are counted so tests can
// assert that fail-fast gates performed no network work.
type MockBackend struct {
	Locations    []domain.Location
	ExtractErr   error
	OptimizeErr  error
	HealthStatus ports.HealthStatus

	ExtractCalls  int
	OptimizeCalls int

	// LastOptimized records the locations most recently submitted for
	// optimization, after sequencing.
	LastOptimized []domain.Location
}

func NewMockBackend(locations []domain.Location) *MockBackend {
	return &MockBackend{
		Locations:    locations,
		HealthStatus: ports.HealthStatus{Status: "healthy"},
	}
}

func (m *MockBackend) ExtractSequence(ctx context.Context, requestText string) (domain.ExtractionResult, error) {
	m.ExtractCalls++
	if m.ExtractErr != nil {
		return domain.ExtractionResult{}, m.ExtractErr
	}
	return domain.ExtractionResult{ParsedLocations: m.Locations}, nil
}

func (m *MockBackend) OptimizeRoute(ctx context.Context, locations []domain.Location) (*domain.OptimizationResult, error) {
	m.OptimizeCalls++
	if m.OptimizeErr != nil {
		return nil, m.OptimizeErr
	}

	sequenced := domain.SequenceLocations(locations)
	m.LastOptimized = sequenced

	stops := make([]domain.OptimizedStop, len(sequenced))
	for i, loc := range sequenced {
		stops[i] = domain.OptimizedStop{
			Order:         i + 1,
			Name:          loc.Name,
			Lat:           loc.Lat,
			Lon:           loc.Lon,
			VisitSequence: loc.VisitSequence,
		}
	}
	return &domain.OptimizationResult{
		Status:           "success",
		OptimizedRoute:   stops,
		TotalDistanceKm:  domain.Metric{Value: float64(120 * len(stops)), Valid: true},
		TotalDurationMin: domain.Metric{Value: float64(90 * len(stops)), Valid: true},
		RouteID:          1,
		Message:          "Route optimized and saved as draft.",
	}, nil
}

func (m *MockBackend) Health(ctx context.Context) ports.HealthStatus {
	return m.HealthStatus
}

func (m *MockBackend) SummarizeRoute(ctx context.Context, result *domain.OptimizationResult) (domain.RouteSummary, error) {
	if result == nil || len(result.OptimizedRoute) == 0 {
		return domain.RouteSummary{}, apperror.Validation("No optimized route to summarize.")
	}
	return domain.RouteSummary{
		Status:  "success",
		Summary: fmt.Sprintf("Drive %s in order; no alerts.", strings.Join(result.StopNames(), " -> ")),
	}, nil
}

func (m *MockBackend) CreateManifest(ctx context.Context, routeID int64) (domain.Manifest, error) {
	if routeID <= 0 {
		return domain.Manifest{}, apperror.Validation("Optimize a route before creating a manifest.")
	}
	return domain.Manifest{
		Status:     "success",
		Message:    fmt.Sprintf("Manifest created for route %d", routeID),
		RouteID:    routeID,
		ManifestID: "MF_DEMO",
		Driver:     "Driver_001",
	}, nil
}

func (m *MockBackend) RouteProgress(ctx context.Context) (domain.RouteProgress, error) {
	return domain.RouteProgress{Status: "no_active_route", Active: false}, nil
}
