package trace

// Level controls the verbosity of decision tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDecisions captures every scheduling decision and stop report.
	LevelDecisions Level = "decisions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelDecisions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// RunTrace collects decision and stop records during a scheduling run.
type RunTrace struct {
	Level     Level
	Decisions []DecisionRecord
	Stops     []StopRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(level Level) *RunTrace {
	return &RunTrace{
		Level:     level,
		Decisions: make([]DecisionRecord, 0),
		Stops:     make([]StopRecord, 0),
	}
}

// Enabled reports whether records should be collected.
func (rt *RunTrace) Enabled() bool {
	return rt != nil && rt.Level == LevelDecisions
}

// RecordDecision appends a scheduling decision record.
func (rt *RunTrace) RecordDecision(record DecisionRecord) {
	if !rt.Enabled() {
		return
	}
	record.Seq = len(rt.Decisions)
	rt.Decisions = append(rt.Decisions, record)
}

// RecordStop appends a stop report record.
func (rt *RunTrace) RecordStop(record StopRecord) {
	if !rt.Enabled() {
		return
	}
	record.Seq = len(rt.Stops)
	rt.Stops = append(rt.Stops, record)
}
