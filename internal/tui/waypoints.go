package tui

import (
	"fmt"
	"strconv"
	"strings"

	"logistics-copilot/internal/domain"
)

// parseWaypoints turns the waypoint entry buffer into locations. One
// waypoint per line, "name, lat, lon"; blank lines are skipped. Selection
// order is line order; sequencing happens later in the map flow.
func parseWaypoints(text string) ([]domain.Location, error) {
	var out []domain.Location
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: want \"name, lat, lon\", got %q", i+1, line)
		}

		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", i+1)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad latitude %q", i+1, strings.TrimSpace(parts[1]))
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad longitude %q", i+1, strings.TrimSpace(parts[2]))
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: coordinates out of range", i+1)
		}

		out = append(out, domain.Location{Name: name, Lat: lat, Lon: lon})
	}
	return out, nil
}
