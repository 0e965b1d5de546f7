// Package services composes the backend adapters into the user-facing
// operations. Each operation is all-or-nothing: no partial result is
// surfaced when a stage fails, and no error is ever swallowed here.
package services

import (
	"context"
	"fmt"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/ports"
)

// ErrTooFewLocations is the text-flow gate message, shown verbatim.
const ErrTooFewLocations = "At least two locations are required."

// ProcessResult is the combined outcome of the text flow: the candidate
// locations from extraction and the optimized route built from them.
type ProcessResult struct {
	Extracted domain.ExtractionResult
	Optimized *domain.OptimizationResult
}

// ProcessLogisticsRequest runs the text entry flow: extraction, the
// minimum-stop gate, then optimization. Optimization starts only after
// extraction succeeds; fewer than two extracted locations fail fast with a
// validation error and no optimizer call.
func ProcessLogisticsRequest(
	ctx context.Context,
	extractor ports.SequenceExtractor,
	optimizer ports.Optimizer,
	requestText string,
) (ProcessResult, error) {
	extracted, err := extractor.ExtractSequence(ctx, requestText)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("process logistics request: extract: %w", err)
	}

	if len(extracted.ParsedLocations) < 2 {
		return ProcessResult{}, apperror.Validation(ErrTooFewLocations)
	}

	optimized, err := optimizer.OptimizeRoute(ctx, extracted.ParsedLocations)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("process logistics request: optimize: %w", err)
	}

	return ProcessResult{Extracted: extracted, Optimized: optimized}, nil
}
