// routectl is the scripting companion to the interactive copilot: the same
// orchestration operations, one per subcommand, with JSON on stdout and logs
// on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logistics-copilot/internal/adapters/backend"
	"logistics-copilot/internal/platform/config"
	"logistics-copilot/internal/platform/logging"
)

var (
	flagAPI     string
	flagSession string
	flagDriver  string
)

func main() {
	root := &cobra.Command{
		Use:           "routectl",
		Short:         "Drive the logistics optimizer backend from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", "", "backend base URL (overrides LOGISTICS_API_URL)")
	root.PersistentFlags().StringVar(&flagSession, "session", "", "session ID (overrides LOGISTICS_SESSION_ID)")
	root.PersistentFlags().StringVar(&flagDriver, "driver", "", "driver name recorded on manifests")

	root.AddCommand(
		newHealthCmd(),
		newExtractCmd(),
		newRouteCmd(),
		newMapCmd(),
		newSummaryCmd(),
		newActivateCmd(),
		newProgressCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "routectl: %v\n", err)
		os.Exit(1)
	}
}

// newBackendClient builds the transport client from env config plus flag
// overrides. Every subcommand goes through here so they all share one
// configuration surface.
func newBackendClient() (*backend.Client, error) {
	cfg := config.Load()
	if flagAPI != "" {
		cfg.BaseURL = flagAPI
	}
	if flagSession != "" {
		cfg.SessionID = flagSession
	}
	if flagDriver != "" {
		cfg.DriverName = flagDriver
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, "routectl")
	return backend.NewClient(cfg.BaseURL, logger,
		backend.WithSessionID(cfg.SessionID),
		backend.WithDriverName(cfg.DriverName),
	)
}
