package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	TotalDecisions int
	Runs           int
	Sleeps         int
	Panics         int
	Expirations    int
	Syscalls       int
	Forks          int
	GrantsPerPid   map[int]int // pid → count of Run grants
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		GrantsPerPid: make(map[int]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalDecisions = len(rt.Decisions)
	for _, d := range rt.Decisions {
		switch d.Kind {
		case "run":
			summary.Runs++
			summary.GrantsPerPid[d.Pid]++
		case "sleep":
			summary.Sleeps++
		case "panic":
			summary.Panics++
		}
	}

	for _, s := range rt.Stops {
		if s.Expired {
			summary.Expirations++
			continue
		}
		summary.Syscalls++
		if s.NewPid != 0 {
			summary.Forks++
		}
	}

	return summary
}
