package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/services"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe backend liveness (never fails)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			return printJSON(client.Health(cmd.Context()))
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <request-text>",
		Short: "Extract candidate locations from free text (no optimization)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			result, err := client.ExtractSequence(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <request-text>",
		Short: "Run the full text flow: extraction, validation, optimization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			result, err := services.ProcessLogisticsRequest(cmd.Context(), client, client, args[0])
			if err != nil {
				return err
			}
			return printJSON(struct {
				Extracted domain.ExtractionResult    `json:"extracted"`
				Optimized *domain.OptimizationResult `json:"optimized"`
			}{result.Extracted, result.Optimized})
		},
	}
}

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <name:lat:lon> <name:lat:lon> ...",
		Short: "Run the waypoint flow; argument order is visiting pick order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs := make([]domain.Location, 0, len(args))
			for _, arg := range args {
				loc, err := parseWaypointArg(arg)
				if err != nil {
					return err
				}
				locs = append(locs, loc)
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			result, err := services.OptimizeFromMap(cmd.Context(), client, locs)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize an optimization result read as JSON from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result domain.OptimizationResult
			if err := json.NewDecoder(os.Stdin).Decode(&result); err != nil {
				return fmt.Errorf("decode optimization result from stdin: %w", err)
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			summary, err := client.SummarizeRoute(cmd.Context(), &result)
			if err != nil {
				return err
			}
			return printJSON(summary)
		},
	}
}

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <route-id>",
		Short: "Activate a draft route as the session's delivery manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("route-id must be an integer, got %q", args[0])
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			manifest, err := client.CreateManifest(cmd.Context(), routeID)
			if err != nil {
				return err
			}
			return printJSON(manifest)
		},
	}
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show live progress of the session's active route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			progress, err := client.RouteProgress(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(progress)
		},
	}
}

func parseWaypointArg(arg string) (domain.Location, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return domain.Location{}, fmt.Errorf("want name:lat:lon, got %q", arg)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("bad latitude in %q", arg)
	}
	lon, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("bad longitude in %q", arg)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return domain.Location{}, fmt.Errorf("empty name in %q", arg)
	}
	return domain.Location{Name: name, Lat: lat, Lon: lon}, nil
}
