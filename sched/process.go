// Implements the per-process record kept by scheduling policies and the
// read-only view contract shared across policies.

package sched

import "fmt"

// Pid uniquely identifies a live process. Pids are minted monotonically
// starting at 1 and are never reused while the process is live. Pid 1 is
// the init process; the round-robin engine treats losing track of it as a
// consistency violation (see Decision Panic).
type Pid int

// EventID identifies a wait/signal event. Under the round-robin policy the
// Wait and Signal syscalls are accepted but never block, so no process is
// ever parked on an event.
type EventID int64

// ProcessState is the lifecycle state of a simulated process.
type ProcessState int

const (
	// StateReady means the process sits in the ready queue, eligible to run.
	StateReady ProcessState = iota
	// StateRunning means the process holds the most recent CPU grant.
	StateRunning
	// StateWaiting means the process is blocked, either on a timed sleep or
	// (for event-aware policies) on an event.
	StateWaiting
)

func (s ProcessState) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateWaiting:
		return "WAITING"
	default:
		return fmt.Sprintf("ProcessState(%d)", int(s))
	}
}

// Timings accumulates a process's timing counters, all in simulated ticks.
type Timings struct {
	// Waiting is the delay imposed on the process while another process ran,
	// plus any time it spent asleep.
	Waiting int64
	// Syscalls counts serviced syscalls.
	Syscalls int64
	// Execution is the actual running time consumed.
	Execution int64
}

// ProcessView is the read-only capability interface over a process record.
// Every scheduling policy exposes its processes through this contract so
// introspection and reporting never depend on policy-specific fields.
// Implementations MUST NOT allow mutation through the view.
type ProcessView interface {
	Pid() Pid
	State() ProcessState
	Priority() int
	Timings() Timings
}

// rrProcess is the round-robin policy's process record.
//
// remaining tracks the ticks left in the current quantum and is never above
// totalTime while the process is Ready. sleepTime is non-zero exactly while
// the process sits in the sleep queue (and until its wake bookkeeping runs
// at the head of the ready queue).
type rrProcess struct {
	pid       Pid
	state     ProcessState
	priority  int // informational only for round robin
	timings   Timings
	remaining int64
	sleepTime int64
	totalTime int64 // quantum size restored on wake
}

func newRRProcess(pid Pid, priority int, quantum int64) *rrProcess {
	return &rrProcess{
		pid:       pid,
		state:     StateReady,
		priority:  priority,
		remaining: quantum,
		totalTime: quantum,
	}
}

func (p *rrProcess) Pid() Pid            { return p.pid }
func (p *rrProcess) State() ProcessState { return p.state }
func (p *rrProcess) Priority() int       { return p.priority }
func (p *rrProcess) Timings() Timings    { return p.timings }

func (p *rrProcess) String() string {
	return fmt.Sprintf("pid=%d state=%s prio=%d wait=%d sys=%d exec=%d",
		p.pid, p.state, p.priority, p.timings.Waiting, p.timings.Syscalls, p.timings.Execution)
}
