package domain

// A named geographic point with an intended 1-based visiting order.
// Immutable once constructed. Locations come either from the extraction
// service (free text) or directly from waypoint selection.
type Location struct {
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	VisitSequence int     `json:"visit_sequence"`
}

// Candidate locations parsed from free text, in candidate order.
// The order is not yet optimized.
type ExtractionResult struct {
	ParsedLocations []Location `json:"parsed_locations"`
}

// The wire payload for a route optimization call. Every entry carries a
// visit_sequence by the time the request is transmitted.
type OptimizationRequest struct {
	ParsedLocations []Location `json:"parsed_locations"`
}

// SequenceLocations returns a copy of locs where every entry has a positive
// visit_sequence: explicit sequences are kept, missing ones (<=0) become
// positional index + 1. The input is never modified.
func SequenceLocations(locs []Location) []Location {
	out := make([]Location, len(locs))
	for i, loc := range locs {
		if loc.VisitSequence <= 0 {
			loc.VisitSequence = i + 1
		}
		out[i] = loc
	}
	return out
}

// ResequenceBySelection returns a copy of locs where visit_sequence is
// overwritten with positional index + 1 regardless of any incoming value.
// Selection order is authoritative for map-picked waypoints.
func ResequenceBySelection(locs []Location) []Location {
	out := make([]Location, len(locs))
	for i, loc := range locs {
		loc.VisitSequence = i + 1
		out[i] = loc
	}
	return out
}
