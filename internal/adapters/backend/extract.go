package backend

import (
	"context"
	"net/http"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

const extractFallback = "Failed to extract locations from the request."

type extractRequest struct {
	RequestText string `json:"request_text"`
}

// ExtractSequence asks the backend to turn free text into candidate
// locations. The text is passed through untouched; the backend owns all
// interpretation. Failures carry the server detail when present, else a
// generic extraction message.
func (c *Client) ExtractSequence(ctx context.Context, requestText string) (_ domain.ExtractionResult, err error) {
	defer obs.Time(ctx, c.logger, "backend.ExtractSequence")(&err)

	var out domain.ExtractionResult
	if err := c.send(ctx, http.MethodPost, "/extract-sequence", nil, extractRequest{RequestText: requestText}, &out); err != nil {
		return domain.ExtractionResult{}, apperror.WithFallback(err, extractFallback)
	}
	return out, nil
}
