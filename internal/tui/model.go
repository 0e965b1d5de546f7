// Package tui is the terminal interface: a thin presentational consumer of
// the workflow controller. All workflow state lives in the controller; the
// model only holds widget state and advisory extras (health, summary,
// notices) that are not part of the workflow contract.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/ports"
	"logistics-copilot/internal/workflow"
)

const healthInterval = 30 * time.Second

// Backend is everything the interface needs beyond the controller: the
// advisory liveness probe and the copilot extras.
type Backend interface {
	ports.HealthChecker
	ports.Summarizer
	ports.ManifestCreator
	ports.ProgressReader
}

type inputMode int

const (
	modeText inputMode = iota
	modeWaypoints
)

type (
	outcomeMsg    struct{ out workflow.Outcome }
	healthMsg     struct{ status ports.HealthStatus }
	healthTickMsg struct{}
	summaryMsg    struct {
		summary domain.RouteSummary
		err     error
	}
	manifestMsg struct {
		manifest domain.Manifest
		err      error
	}
	progressMsg struct {
		progress domain.RouteProgress
		err      error
	}
)

type Model struct {
	ctrl    *workflow.Controller
	backend Backend

	input     textinput.Model
	waypoints textarea.Model
	spin      spinner.Model
	mode      inputMode

	health      ports.HealthStatus
	healthKnown bool

	summary  string
	progress *domain.RouteProgress
	notice   string
	fetching bool

	width  int
	height int
}

func NewModel(ctrl *workflow.Controller, backend Backend) Model {
	ti := textinput.New()
	ti.Placeholder = "Start from Delhi, visit Mumbai and Chennai, then end at Kolkata"
	ti.CharLimit = 500
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Delhi, 28.61, 77.21\nMumbai, 19.07, 72.87"
	ta.SetHeight(6)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctrl:      ctrl,
		backend:   backend,
		input:     ti,
		waypoints: ta,
		spin:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.probeHealth(), m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(20, msg.Width-8)
		m.waypoints.SetWidth(max(20, msg.Width-8))
		return m, nil

	case healthMsg:
		m.health = msg.status
		m.healthKnown = true
		return m, tea.Tick(healthInterval, func(time.Time) tea.Msg { return healthTickMsg{} })

	case healthTickMsg:
		return m, m.probeHealth()

	case spinner.TickMsg:
		if !m.ctrl.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case outcomeMsg:
		m.ctrl.Resolve(msg.out)
		return m, nil

	case summaryMsg:
		m.fetching = false
		if msg.err != nil {
			m.notice = errStyle.Render(displayError(msg.err))
			return m, nil
		}
		m.summary = msg.summary.Summary
		return m, nil

	case manifestMsg:
		m.fetching = false
		if msg.err != nil {
			m.notice = errStyle.Render(displayError(msg.err))
			return m, nil
		}
		m.notice = okStyle.Render(fmt.Sprintf("Manifest %s created for %s.", msg.manifest.ManifestID, msg.manifest.Driver))
		return m, nil

	case progressMsg:
		m.fetching = false
		if msg.err != nil {
			m.notice = errStyle.Render(displayError(msg.err))
			return m, nil
		}
		p := msg.progress
		m.progress = &p
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateWidgets(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.ctrl.State().Stage {
	case workflow.StageInput:
		return m.updateInputKey(msg)
	case workflow.StageProcessing:
		// No cancellation: the in-flight call runs to completion or timeout.
		return m, nil
	case workflow.StageResults:
		return m.updateResultsKey(msg)
	}
	return m, nil
}

func (m Model) updateInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if m.mode == modeText {
			m.mode = modeWaypoints
			m.input.Blur()
			return m, m.waypoints.Focus()
		}
		m.mode = modeText
		m.waypoints.Blur()
		return m, m.input.Focus()

	case "enter":
		if m.mode == modeText {
			return m.submitText()
		}

	case "ctrl+s":
		if m.mode == modeWaypoints {
			return m.submitWaypoints()
		}
	}
	return m.updateWidgets(msg)
}

func (m Model) updateResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "n":
		m.ctrl.Reset()
		m.summary = ""
		m.progress = nil
		m.notice = ""
		m.input.SetValue("")
		m.waypoints.SetValue("")
		m.mode = modeText
		return m, m.input.Focus()

	case "s":
		if m.fetching || state.OptimizationResult == nil {
			return m, nil
		}
		m.fetching = true
		result := state.OptimizationResult
		return m, func() tea.Msg {
			sum, err := m.backend.SummarizeRoute(context.Background(), result)
			return summaryMsg{summary: sum, err: err}
		}

	case "a":
		if m.fetching || state.OptimizationResult == nil {
			return m, nil
		}
		m.fetching = true
		routeID := state.OptimizationResult.RouteID
		return m, func() tea.Msg {
			mf, err := m.backend.CreateManifest(context.Background(), routeID)
			return manifestMsg{manifest: mf, err: err}
		}

	case "p":
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, func() tea.Msg {
			pr, err := m.backend.RouteProgress(context.Background())
			return progressMsg{progress: pr, err: err}
		}
	}
	return m, nil
}

func (m Model) submitText() (tea.Model, tea.Cmd) {
	pending := m.ctrl.Submit(m.input.Value())
	if pending == nil {
		return m, nil
	}
	return m, tea.Batch(m.spin.Tick, runPending(pending))
}

func (m Model) submitWaypoints() (tea.Model, tea.Cmd) {
	locs, err := parseWaypoints(m.waypoints.Value())
	if err != nil {
		m.notice = errStyle.Render(err.Error())
		return m, nil
	}
	m.notice = ""
	pending := m.ctrl.SubmitFromMap(locs)
	return m, tea.Batch(m.spin.Tick, runPending(pending))
}

func runPending(p *workflow.Pending) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{out: p.Run(context.Background())}
	}
}

func (m Model) probeHealth() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return healthMsg{status: m.backend.Health(ctx)}
	}
}

func (m Model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == modeText {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.waypoints, cmd = m.waypoints.Update(msg)
	return m, cmd
}
