package tui

import (
	"fmt"
	"strings"

	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/workflow"
)

func displayError(err error) string {
	return apperror.From(err).Message
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Logistics Copilot"))
	b.WriteString("\n")

	switch m.ctrl.State().Stage {
	case workflow.StageInput:
		b.WriteString(m.viewInput())
	case workflow.StageProcessing:
		b.WriteString(m.viewProcessing())
	case workflow.StageResults:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder
	state := m.ctrl.State()

	if m.mode == modeText {
		b.WriteString(labelStyle.Render("Describe the delivery run:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter submit · tab waypoint mode · ctrl+c quit"))
	} else {
		b.WriteString(labelStyle.Render("Waypoints, one per line (name, lat, lon), in visiting pick order:"))
		b.WriteString("\n")
		b.WriteString(m.waypoints.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ctrl+s submit · tab text mode · ctrl+c quit"))
	}

	if state.Err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(state.Err))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
	}
	return b.String()
}

func (m Model) viewProcessing() string {
	state := m.ctrl.State()
	line := fmt.Sprintf("%s Optimizing route…", m.spin.View())
	if state.Query != "" {
		line += labelStyle.Render(fmt.Sprintf("  (%s)", truncate(state.Query, 60)))
	}
	return line
}

func (m Model) viewResults() string {
	var b strings.Builder
	state := m.ctrl.State()
	result := state.OptimizationResult

	if result == nil {
		return errStyle.Render("No result available.")
	}

	var stops strings.Builder
	for _, s := range result.OptimizedRoute {
		stops.WriteString(stopStyle.Render(fmt.Sprintf("%2d. %s", s.Order, s.Name)))
		stops.WriteString(labelStyle.Render(fmt.Sprintf("  (%.4f, %.4f)", s.Lat, s.Lon)))
		stops.WriteString("\n")
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(stops.String(), "\n")))
	b.WriteString("\n")

	b.WriteString(metricStyle.Render(fmt.Sprintf("%s km", result.TotalDistanceKm)))
	b.WriteString(labelStyle.Render("  ·  "))
	b.WriteString(metricStyle.Render(fmt.Sprintf("%s min", result.TotalDurationMin)))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  ·  %d stops", len(result.OptimizedRoute))))
	b.WriteString("\n")

	for _, v := range result.TimeWindowViolations {
		b.WriteString(warnStyle.Render("⚠ " + v))
		b.WriteString("\n")
	}

	if m.summary != "" {
		b.WriteString(boxStyle.Render(m.summary))
		b.WriteString("\n")
	}

	if m.progress != nil {
		b.WriteString(m.viewProgress())
	}

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("s summary · a activate manifest · p progress · n new request · q quit"))
	return b.String()
}

func (m Model) viewProgress() string {
	p := m.progress
	if !p.Active {
		return labelStyle.Render("No active route for this session.") + "\n"
	}
	counts := p.RouteSummary
	return labelStyle.Render(fmt.Sprintf(
		"%s: %d/%d stops done (%.0f%%) · next: %s",
		p.Driver, counts.Completed, counts.TotalStops, counts.ProgressPercentage, p.NextStop,
	)) + "\n"
}

func (m Model) viewFooter() string {
	if !m.healthKnown {
		return labelStyle.Render("backend: checking…")
	}
	if m.health.Online() {
		return okStyle.Render("backend: " + m.health.Status)
	}
	return errStyle.Render("backend: offline")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
