package workflow

// Stage is the interface-visible workflow stage. The zero value is
// StageInput, the state every session starts in and every failure or reset
// returns to.
type Stage int

const (
	StageInput Stage = iota
	StageProcessing
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageProcessing:
		return "processing"
	case StageResults:
		return "results"
	default:
		return "invalid"
	}
}
