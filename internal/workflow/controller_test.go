package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-copilot/internal/adapters/backend"
	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/logging"
	"logistics-copilot/internal/services"
)

func fourCities() []domain.Location {
	return []domain.Location{
		{Name: "Delhi", Lat: 28.61, Lon: 77.21, VisitSequence: 1},
		{Name: "Mumbai", Lat: 19.07, Lon: 72.87, VisitSequence: 2},
		{Name: "Bangalore", Lat: 12.97, Lon: 77.59, VisitSequence: 2},
		{Name: "Kolkata", Lat: 22.57, Lon: 88.36, VisitSequence: 4},
	}
}

func newController(mock *backend.MockBackend) *Controller {
	return New(mock, mock, logging.Discard())
}

// run drives one operation the way the event loop would.
func run(t *testing.T, c *Controller, p *Pending) {
	t.Helper()
	require.NotNil(t, p)
	c.Resolve(p.Run(context.Background()))
}

func TestSubmitTextFlowEndsInResults(t *testing.T) {
	c := newController(backend.NewMockBackend(fourCities()))

	p := c.Submit("Start from Delhi, visit Mumbai, Bangalore, and Chennai, then end at Kolkata")
	require.NotNil(t, p)

	mid := c.State()
	assert.Equal(t, StageProcessing, mid.Stage)
	assert.True(t, mid.Loading)
	assert.Empty(t, mid.Err)

	c.Resolve(p.Run(context.Background()))

	state := c.State()
	assert.Equal(t, StageResults, state.Stage)
	assert.False(t, state.Loading)
	assert.Len(t, state.ExtractedLocations, 4)
	require.NotNil(t, state.OptimizationResult)
	assert.Len(t, state.OptimizationResult.OptimizedRoute, 4)
}

func TestSubmitSingleLocationReturnsToInputWithError(t *testing.T) {
	c := newController(backend.NewMockBackend([]domain.Location{
		{Name: "Delhi", Lat: 28.61, Lon: 77.21, VisitSequence: 1},
	}))

	run(t, c, c.Submit("Delhi"))

	state := c.State()
	assert.Equal(t, StageInput, state.Stage)
	assert.False(t, state.Loading)
	assert.Equal(t, "At least two locations are required.", state.Err)
	assert.Nil(t, state.OptimizationResult)
}

func TestSubmitBlankQueryStaysInInput(t *testing.T) {
	mock := backend.NewMockBackend(fourCities())
	c := newController(mock)

	p := c.Submit("   ")
	assert.Nil(t, p)

	state := c.State()
	assert.Equal(t, StageInput, state.Stage)
	assert.Equal(t, ErrBlankQuery, state.Err)
	assert.False(t, state.Loading)
	assert.Equal(t, 0, mock.ExtractCalls)
}

func TestSubmitClearsPriorErrorAndResults(t *testing.T) {
	c := newController(backend.NewMockBackend(fourCities()))

	run(t, c, c.Submit("first run"))
	require.Equal(t, StageResults, c.State().Stage)

	p := c.Submit("second run")
	state := c.State()
	assert.Empty(t, state.Err)
	assert.Nil(t, state.OptimizationResult)
	assert.Nil(t, state.ExtractedLocations)
	c.Resolve(p.Run(context.Background()))
	assert.Equal(t, StageResults, c.State().Stage)
}

func TestSubmitFromMapUsesSubmittedLocationsAsDisplayedSet(t *testing.T) {
	mock := backend.NewMockBackend(nil)
	c := newController(mock)

	run(t, c, c.SubmitFromMap([]domain.Location{
		{Name: "A", Lat: 1, Lon: 1},
		{Name: "B", Lat: 2, Lon: 2},
	}))

	state := c.State()
	assert.Equal(t, StageResults, state.Stage)
	require.Len(t, state.ExtractedLocations, 2)
	assert.Equal(t, 1, state.ExtractedLocations[0].VisitSequence)
	assert.Equal(t, 2, state.ExtractedLocations[1].VisitSequence)
	assert.Equal(t, 0, mock.ExtractCalls, "map flow performs no extraction call")
}

func TestSubmitFromMapValidationFailure(t *testing.T) {
	mock := backend.NewMockBackend(nil)
	c := newController(mock)

	run(t, c, c.SubmitFromMap([]domain.Location{{Name: "A"}}))

	state := c.State()
	assert.Equal(t, StageInput, state.Stage)
	assert.False(t, state.Loading)
	assert.Equal(t, services.ErrTooFewWaypoints, state.Err)
	assert.Equal(t, 0, mock.OptimizeCalls)
}

func TestFailedSubmitAlwaysClearsLoading(t *testing.T) {
	mock := backend.NewMockBackend(fourCities())
	mock.OptimizeErr = apperror.Application("optimizer unavailable", nil)
	c := newController(mock)

	run(t, c, c.Submit("Delhi to Mumbai to Pune"))

	state := c.State()
	assert.False(t, state.Loading)
	assert.Equal(t, StageInput, state.Stage)
	assert.Equal(t, "optimizer unavailable", state.Err)
}

func TestNetworkFailureSurfacesGenericMessage(t *testing.T) {
	mock := backend.NewMockBackend(fourCities())
	mock.ExtractErr = apperror.Network(assert.AnError)
	c := newController(mock)

	run(t, c, c.Submit("Delhi to Mumbai"))

	assert.Equal(t, apperror.GenericNetworkMessage, c.State().Err)
}

func TestResetFromAnyStage(t *testing.T) {
	c := newController(backend.NewMockBackend(fourCities()))

	// from results
	run(t, c, c.Submit("a run"))
	require.Equal(t, StageResults, c.State().Stage)
	c.Reset()
	assert.Equal(t, State{Stage: StageInput}, c.State())

	// from processing (operation still in flight)
	p := c.Submit("another run")
	require.Equal(t, StageProcessing, c.State().Stage)
	c.Reset()
	assert.Equal(t, State{Stage: StageInput}, c.State())

	// the in-flight outcome arrives late and must be discarded
	committed := c.Resolve(p.Run(context.Background()))
	assert.False(t, committed)
	assert.Equal(t, State{Stage: StageInput}, c.State())
}

func TestStaleOutcomeIsDiscarded(t *testing.T) {
	c := newController(backend.NewMockBackend(fourCities()))

	first := c.Submit("first")
	firstOutcome := first.Run(context.Background())

	// a second submit supersedes the first before it resolves
	second := c.Submit("second")
	secondOutcome := second.Run(context.Background())

	assert.False(t, c.Resolve(firstOutcome), "superseded outcome must not commit")
	assert.True(t, c.State().Loading, "stale outcome must not clear loading")

	assert.True(t, c.Resolve(secondOutcome))
	state := c.State()
	assert.Equal(t, StageResults, state.Stage)
	assert.Equal(t, "second", state.Query)
}

func TestStageStrings(t *testing.T) {
	assert.Equal(t, "input", StageInput.String())
	assert.Equal(t, "processing", StageProcessing.String())
	assert.Equal(t, "results", StageResults.String())
	assert.Equal(t, "invalid", Stage(99).String())
}
