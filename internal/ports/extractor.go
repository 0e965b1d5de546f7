package ports

import (
	"context"
	"logistics-copilot/internal/domain"
)

// Port: converts free-text logistics instructions into candidate locations.
type SequenceExtractor interface {
	// Return the locations named in requestText, in candidate order.
	ExtractSequence(ctx context.Context, requestText string) (domain.ExtractionResult, error)
}
