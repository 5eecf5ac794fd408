// Package trace provides decision-trace recording for scheduling runs.
// This package has no dependencies on sched/ — it stores pure data types.
package trace

// DecisionRecord captures a single scheduling decision returned by Next.
type DecisionRecord struct {
	Seq       int    // position in the run's decision sequence
	Clock     int64  // engine time when the decision was made
	Kind      string // "run", "sleep", "done", "panic"
	Pid       int    // granted pid (run decisions only)
	Timeslice int64  // granted quantum (run decisions only)
	Duration  int64  // sleep duration (sleep decisions only)
}

// StopRecord captures a single stop report delivered to the engine.
type StopRecord struct {
	Seq       int    // position in the run's stop sequence
	Clock     int64  // engine time after the stop was applied
	Pid       int    // the process the grant belonged to
	Expired   bool   // true for quantum expiry, false for a syscall stop
	Syscall   string // syscall name ("" for expiry)
	Remaining int64  // unused ticks reported at the syscall point
	NewPid    int    // pid minted by a fork (0 otherwise)
}
