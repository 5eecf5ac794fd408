package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel(""))
	assert.True(t, IsValidLevel("none"))
	assert.True(t, IsValidLevel("decisions"))
	assert.False(t, IsValidLevel("verbose"))
}

func TestRunTrace_Disabled_RecordsNothing(t *testing.T) {
	rt := NewRunTrace(LevelNone)
	rt.RecordDecision(DecisionRecord{Kind: "run", Pid: 1})
	rt.RecordStop(StopRecord{Pid: 1, Expired: true})

	assert.Empty(t, rt.Decisions)
	assert.Empty(t, rt.Stops)
}

func TestRunTrace_NilSafe(t *testing.T) {
	var rt *RunTrace
	assert.False(t, rt.Enabled())
	assert.NotPanics(t, func() {
		rt.RecordDecision(DecisionRecord{Kind: "run"})
		rt.RecordStop(StopRecord{Expired: true})
	})
}

func TestRunTrace_RecordsInSequence(t *testing.T) {
	rt := NewRunTrace(LevelDecisions)
	rt.RecordDecision(DecisionRecord{Kind: "run", Pid: 1, Timeslice: 5})
	rt.RecordDecision(DecisionRecord{Kind: "sleep", Duration: 3})
	rt.RecordStop(StopRecord{Pid: 1, Syscall: "fork", NewPid: 2})

	assert.Len(t, rt.Decisions, 2)
	assert.Equal(t, 0, rt.Decisions[0].Seq)
	assert.Equal(t, 1, rt.Decisions[1].Seq)
	assert.Len(t, rt.Stops, 1)
	assert.Equal(t, 0, rt.Stops[0].Seq)
}

func TestSummarize_CountsByKind(t *testing.T) {
	rt := NewRunTrace(LevelDecisions)
	rt.RecordDecision(DecisionRecord{Kind: "run", Pid: 1})
	rt.RecordDecision(DecisionRecord{Kind: "run", Pid: 1})
	rt.RecordDecision(DecisionRecord{Kind: "run", Pid: 2})
	rt.RecordDecision(DecisionRecord{Kind: "sleep", Duration: 4})
	rt.RecordDecision(DecisionRecord{Kind: "done"})
	rt.RecordStop(StopRecord{Pid: 1, Syscall: "fork", NewPid: 2})
	rt.RecordStop(StopRecord{Pid: 1, Expired: true})
	rt.RecordStop(StopRecord{Pid: 2, Syscall: "exit"})

	s := Summarize(rt)

	assert.Equal(t, 5, s.TotalDecisions)
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1, s.Sleeps)
	assert.Equal(t, 0, s.Panics)
	assert.Equal(t, 1, s.Expirations)
	assert.Equal(t, 2, s.Syscalls)
	assert.Equal(t, 1, s.Forks)
	assert.Equal(t, map[int]int{1: 2, 2: 1}, s.GrantsPerPid)
}

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalDecisions)
	assert.Empty(t, s.GrantsPerPid)
}
