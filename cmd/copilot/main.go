package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"logistics-copilot/internal/adapters/backend"
	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/config"
	"logistics-copilot/internal/platform/logging"
	"logistics-copilot/internal/ports"
	"logistics-copilot/internal/tui"
	"logistics-copilot/internal/workflow"
)

// copilotBackend is what the interface consumes: the three workflow ports
// plus the advisory extras, satisfied by both the real client and the mock.
type copilotBackend interface {
	ports.SequenceExtractor
	ports.Optimizer
	tui.Backend
}

// main is the application composition root. It wires config, logger, the
// backend client, and the workflow controller, then hands the terminal to
// Bubble Tea.
func main() {
	demo := flag.Bool("demo", false, "run against an in-memory backend (no network)")
	flag.Parse()

	cfg := config.Load()

	// The TUI owns stdout; logs go to a file when configured, else nowhere.
	logger := logging.Discard()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger = logging.New(f, cfg.LogLevel, "copilot")
	}

	be, err := buildBackend(cfg, logger, *demo)
	if err != nil {
		log.Fatal(err)
	}

	ctrl := workflow.New(be, be, logger)
	model := tui.NewModel(ctrl, be)

	logger.Info("starting copilot", "base_url", cfg.BaseURL, "session_id", cfg.SessionID, "demo", *demo)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "copilot: %v\n", err)
		os.Exit(1)
	}
}

var _ copilotBackend = (*backend.Client)(nil)
var _ copilotBackend = (*backend.MockBackend)(nil)

func buildBackend(cfg config.Config, logger *slog.Logger, demo bool) (copilotBackend, error) {
	if demo {
		return backend.NewMockBackend([]domain.Location{
			{Name: "Delhi", Lat: 28.6139, Lon: 77.2090, VisitSequence: 1},
			{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, VisitSequence: 2},
			{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946, VisitSequence: 2},
			{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639, VisitSequence: 4},
		}), nil
	}

	client, err := backend.NewClient(cfg.BaseURL, logger,
		backend.WithSessionID(cfg.SessionID),
		backend.WithDriverName(cfg.DriverName),
	)
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}
	return client, nil
}
