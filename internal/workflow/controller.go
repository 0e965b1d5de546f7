// Package workflow holds the finite-state machine driving the interface.
//
// The Controller is the sole mutator of interface-visible state.
// Presentational code reads State and invokes Submit, SubmitFromMap, and
// Reset; nothing else touches the state. The controller is written for a
// single-goroutine event loop: Submit returns a Pending whose Run executes
// the network flow off-loop, and the resulting Outcome is handed back to
// Resolve on the loop.
package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
	"logistics-copilot/internal/ports"
	"logistics-copilot/internal/services"
)

// ErrBlankQuery is shown when submit is invoked with an empty query.
const ErrBlankQuery = "Enter a logistics request first."

// State is everything the interface renders. It lives in memory for the
// session and is never persisted.
type State struct {
	Stage              Stage
	Query              string
	ExtractedLocations []domain.Location
	OptimizationResult *domain.OptimizationResult
	Err                string
	Loading            bool
}

// Outcome is the completed result of one submitted operation, tagged with
// the fencing token it was issued under.
type Outcome struct {
	token     uint64
	extracted []domain.Location
	result    *domain.OptimizationResult
	err       error
}

// Pending is an accepted operation whose network work has not run yet.
// Run executes the flow (off the event loop) and the Outcome goes back to
// Controller.Resolve. There is no cancellation: once Run starts, the call
// completes or times out even if the controller has moved on.
type Pending struct {
	token uint64
	run   func(ctx context.Context) Outcome
}

func (p *Pending) Run(ctx context.Context) Outcome {
	ctx = obs.WithRequestID(ctx, uuid.NewString())
	return p.run(ctx)
}

// Controller owns the workflow state machine: input -> processing ->
// results, with failure and reset edges back to input.
type Controller struct {
	extractor ports.SequenceExtractor
	optimizer ports.Optimizer
	logger    *slog.Logger

	state State

	// latest is a monotonic fencing token. Resolve commits an outcome only
	// when its token is the latest issued, so a response from a superseded
	// operation can never overwrite a newer one.
	latest uint64
}

func New(extractor ports.SequenceExtractor, optimizer ports.Optimizer, logger *slog.Logger) *Controller {
	return &Controller{
		extractor: extractor,
		optimizer: optimizer,
		logger:    logger,
		state:     State{Stage: StageInput},
	}
}

// State returns a snapshot of the interface-visible state.
func (c *Controller) State() State { return c.state }

// Submit starts the text entry flow for query. A blank query sets the error
// and stays in input, returning nil. Otherwise prior error and results are
// cleared, the stage moves to processing, and the returned Pending carries
// the work to run.
func (c *Controller) Submit(query string) *Pending {
	if strings.TrimSpace(query) == "" {
		c.state.Err = ErrBlankQuery
		return nil
	}

	token := c.begin(query)
	return &Pending{
		token: token,
		run: func(ctx context.Context) Outcome {
			res, err := services.ProcessLogisticsRequest(ctx, c.extractor, c.optimizer, query)
			if err != nil {
				return Outcome{token: token, err: err}
			}
			return Outcome{
				token:     token,
				extracted: res.Extracted.ParsedLocations,
				result:    res.Optimized,
			}
		},
	}
}

// SubmitFromMap starts the waypoint entry flow. The submitted locations
// themselves become the displayed set on success; there is no separate
// extraction step.
func (c *Controller) SubmitFromMap(locations []domain.Location) *Pending {
	token := c.begin("")
	picked := domain.ResequenceBySelection(locations)
	return &Pending{
		token: token,
		run: func(ctx context.Context) Outcome {
			res, err := services.OptimizeFromMap(ctx, c.optimizer, picked)
			if err != nil {
				return Outcome{token: token, err: err}
			}
			return Outcome{token: token, extracted: picked, result: res}
		},
	}
}

// Resolve commits a completed outcome. Stale outcomes (superseded by a newer
// submit or a reset) are discarded and the state is untouched. Loading is
// always cleared on commit, success or failure.
func (c *Controller) Resolve(out Outcome) bool {
	if out.token != c.latest {
		c.logger.Info("discarding stale outcome", "token", out.token, "latest", c.latest)
		return false
	}

	c.state.Loading = false

	if out.err != nil {
		e := apperror.From(out.err)
		c.logger.Warn("operation failed", "kind", e.Kind.String(), "err", out.err)
		c.state.Err = e.Message
		c.state.Stage = StageInput
		return true
	}

	c.state.ExtractedLocations = out.extracted
	c.state.OptimizationResult = out.result
	c.state.Err = ""
	c.state.Stage = StageResults
	return true
}

// Reset returns to the initial input state unconditionally, from any stage.
// The token bump makes any in-flight outcome stale on arrival; the network
// call itself runs to completion or timeout.
func (c *Controller) Reset() {
	c.latest++
	c.state = State{Stage: StageInput}
}

func (c *Controller) begin(query string) uint64 {
	c.latest++
	c.state.Query = query
	c.state.Err = ""
	c.state.ExtractedLocations = nil
	c.state.OptimizationResult = nil
	c.state.Loading = true
	c.state.Stage = StageProcessing
	return c.latest
}
