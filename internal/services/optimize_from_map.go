package services

import (
	"context"
	"fmt"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/ports"
)

// ErrTooFewWaypoints is the map-flow gate message, shown verbatim.
const ErrTooFewWaypoints = "Select at least two locations."

// OptimizeFromMap runs the waypoint entry flow. Unlike the text flow, where
// a sequence provided by extraction is honored, selection order is
// authoritative here: every waypoint is resequenced to its pick position
// before the request goes to the same optimizer both flows share.
func OptimizeFromMap(
	ctx context.Context,
	optimizer ports.Optimizer,
	locations []domain.Location,
) (*domain.OptimizationResult, error) {
	if len(locations) < 2 {
		return nil, apperror.Validation(ErrTooFewWaypoints)
	}

	sequenced := domain.ResequenceBySelection(locations)

	optimized, err := optimizer.OptimizeRoute(ctx, sequenced)
	if err != nil {
		return nil, fmt.Errorf("optimize from map: %w", err)
	}
	return optimized, nil
}
