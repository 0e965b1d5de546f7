package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-copilot/internal/adapters/backend"
	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/logging"
	"logistics-copilot/internal/ports"
	"logistics-copilot/internal/workflow"
)

func newTestModel(locs []domain.Location) (Model, *backend.MockBackend) {
	mock := backend.NewMockBackend(locs)
	ctrl := workflow.New(mock, mock, logging.Discard())
	return NewModel(ctrl, mock), mock
}

// drain runs a command tree and returns every message it produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findOutcome pulls the workflow outcome out of a drained message set.
func findOutcome(t *testing.T, msgs []tea.Msg) outcomeMsg {
	t.Helper()
	for _, m := range msgs {
		if out, ok := m.(outcomeMsg); ok {
			return out
		}
	}
	t.Fatal("no outcomeMsg produced")
	return outcomeMsg{}
}

func TestSubmitDrivesWorkflowToResults(t *testing.T) {
	m, _ := newTestModel([]domain.Location{
		{Name: "Delhi", Lat: 28.61, Lon: 77.21, VisitSequence: 1},
		{Name: "Mumbai", Lat: 19.07, Lon: 72.87, VisitSequence: 2},
	})
	m.input.SetValue("Delhi then Mumbai")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Equal(t, workflow.StageProcessing, m.ctrl.State().Stage)
	require.NotNil(t, cmd)

	out := findOutcome(t, drain(cmd))
	next, _ = m.Update(out)
	m = next.(Model)

	state := m.ctrl.State()
	assert.Equal(t, workflow.StageResults, state.Stage)
	assert.False(t, state.Loading)

	view := m.View()
	assert.Contains(t, view, "Delhi")
	assert.Contains(t, view, "Mumbai")
}

func TestBlankSubmitShowsErrorInView(t *testing.T) {
	m, mock := newTestModel(nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, workflow.StageInput, m.ctrl.State().Stage)
	assert.Contains(t, m.View(), workflow.ErrBlankQuery)
	assert.Equal(t, 0, mock.ExtractCalls)
}

func TestWaypointModeSubmit(t *testing.T) {
	m, mock := newTestModel(nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, modeWaypoints, m.mode)

	m.waypoints.SetValue("A, 1, 1\nB, 2, 2")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	require.NotNil(t, cmd)

	out := findOutcome(t, drain(cmd))
	next, _ = m.Update(out)
	m = next.(Model)

	assert.Equal(t, workflow.StageResults, m.ctrl.State().Stage)
	require.Len(t, mock.LastOptimized, 2)
	assert.Equal(t, 1, mock.LastOptimized[0].VisitSequence)
	assert.Equal(t, 2, mock.LastOptimized[1].VisitSequence)
}

func TestWaypointModeRejectsMalformedBufferLocally(t *testing.T) {
	m, mock := newTestModel(nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	m.waypoints.SetValue("not a waypoint")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, workflow.StageInput, m.ctrl.State().Stage)
	assert.Equal(t, 0, mock.OptimizeCalls)
	assert.NotEmpty(t, m.notice)
}

func TestResetFromResults(t *testing.T) {
	m, _ := newTestModel([]domain.Location{
		{Name: "A", VisitSequence: 1}, {Name: "B", VisitSequence: 2},
	})
	m.input.SetValue("A then B")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	out := findOutcome(t, drain(cmd))
	next, _ = m.Update(out)
	m = next.(Model)
	require.Equal(t, workflow.StageResults, m.ctrl.State().Stage)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	state := m.ctrl.State()
	assert.Equal(t, workflow.StageInput, state.Stage)
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Err)
	assert.Nil(t, state.ExtractedLocations)
	assert.Nil(t, state.OptimizationResult)
}

func TestHealthFooter(t *testing.T) {
	m, _ := newTestModel(nil)

	assert.Contains(t, m.View(), "checking")

	next, cmd := m.Update(healthMsg{status: ports.HealthStatus{Status: "healthy"}})
	m = next.(Model)
	assert.NotNil(t, cmd, "a follow-up probe must be scheduled")
	assert.Contains(t, m.View(), "healthy")

	next, _ = m.Update(healthMsg{status: ports.HealthStatus{Status: "offline", Detail: "refused"}})
	m = next.(Model)
	assert.Contains(t, m.View(), "offline")
}

func TestSummaryKeyFetchesAndRendersSummary(t *testing.T) {
	m, _ := newTestModel([]domain.Location{
		{Name: "A", VisitSequence: 1}, {Name: "B", VisitSequence: 2},
	})
	m.input.SetValue("A then B")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(findOutcome(t, drain(cmd)))
	m = next.(Model)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(Model)

	assert.True(t, strings.Contains(m.View(), "A -> B"), "summary text should render")
}
