// Defines the vocabulary exchanged between the policy engine and its driver:
// scheduling decisions, stop reasons, syscalls, and syscall results.

package sched

import "fmt"

// DecisionKind discriminates the outcomes of Scheduler.Next.
type DecisionKind int

const (
	// DecisionRun grants the CPU to a process for a bounded timeslice.
	DecisionRun DecisionKind = iota
	// DecisionSleep reports that no process is runnable but at least one is
	// sleeping; the driver should let the earliest sleeper's delay elapse.
	DecisionSleep
	// DecisionDone reports that no processes remain: the run terminated.
	DecisionDone
	// DecisionPanic reports a detected bookkeeping inconsistency. The engine
	// has already forced every process back to Ready as best-effort recovery;
	// the driver decides whether to abort the run.
	DecisionPanic
)

// Decision is the outcome of a Next call.
// Pid and Timeslice are meaningful only for DecisionRun, Duration only for
// DecisionSleep.
type Decision struct {
	Kind      DecisionKind
	Pid       Pid
	Timeslice int64
	Duration  int64
}

// NewRunDecision grants pid the CPU for timeslice ticks.
func NewRunDecision(pid Pid, timeslice int64) Decision {
	return Decision{Kind: DecisionRun, Pid: pid, Timeslice: timeslice}
}

// NewSleepDecision tells the driver to advance sleep clocks by duration ticks.
func NewSleepDecision(duration int64) Decision {
	return Decision{Kind: DecisionSleep, Duration: duration}
}

func (d Decision) String() string {
	switch d.Kind {
	case DecisionRun:
		return fmt.Sprintf("Run{pid=%d timeslice=%d}", d.Pid, d.Timeslice)
	case DecisionSleep:
		return fmt.Sprintf("Sleep(%d)", d.Duration)
	case DecisionDone:
		return "Done"
	case DecisionPanic:
		return "Panic"
	default:
		return fmt.Sprintf("Decision(%d)", int(d.Kind))
	}
}

// SyscallKind discriminates the syscalls a running process may issue.
type SyscallKind int

const (
	// SyscallFork creates a new process with the given priority.
	SyscallFork SyscallKind = iota
	// SyscallSleep blocks the caller for a timed delay.
	SyscallSleep
	// SyscallWait blocks the caller on an event (stubbed under round robin).
	SyscallWait
	// SyscallSignal wakes processes waiting on an event (stubbed likewise).
	SyscallSignal
	// SyscallExit terminates the caller.
	SyscallExit
)

func (k SyscallKind) String() string {
	switch k {
	case SyscallFork:
		return "fork"
	case SyscallSleep:
		return "sleep"
	case SyscallWait:
		return "wait"
	case SyscallSignal:
		return "signal"
	case SyscallExit:
		return "exit"
	default:
		return fmt.Sprintf("SyscallKind(%d)", int(k))
	}
}

// Syscall is a simulated system call issued by the running process,
// interrupting its quantum early. Priority is meaningful for SyscallFork,
// Duration for SyscallSleep, Event for SyscallWait and SyscallSignal.
type Syscall struct {
	Kind     SyscallKind
	Priority int
	Duration int64
	Event    EventID
}

// Fork creates a process with the given priority.
func Fork(priority int) Syscall { return Syscall{Kind: SyscallFork, Priority: priority} }

// SleepFor blocks the caller for duration ticks.
func SleepFor(duration int64) Syscall { return Syscall{Kind: SyscallSleep, Duration: duration} }

// Wait blocks the caller on event (a stub under round robin: always succeeds).
func Wait(event EventID) Syscall { return Syscall{Kind: SyscallWait, Event: event} }

// Signal wakes waiters on event (a stub under round robin: always succeeds).
func Signal(event EventID) Syscall { return Syscall{Kind: SyscallSignal, Event: event} }

// Exit terminates the caller.
func Exit() Syscall { return Syscall{Kind: SyscallExit} }

// StopKind discriminates how a CPU grant ended.
type StopKind int

const (
	// StopSyscall means the process issued a syscall before its quantum ran out.
	StopSyscall StopKind = iota
	// StopExpired means the process consumed its full granted quantum.
	StopExpired
)

// StopReason reports how the most recent CPU grant ended. For StopSyscall,
// Remaining is the unused portion of the granted quantum at the syscall
// point; the engine derives the consumed time from it.
type StopReason struct {
	Kind      StopKind
	Syscall   Syscall
	Remaining int64
}

// SyscallStop reports that the running process issued sc with remaining
// unused ticks in its quantum.
func SyscallStop(sc Syscall, remaining int64) StopReason {
	return StopReason{Kind: StopSyscall, Syscall: sc, Remaining: remaining}
}

// ExpiredStop reports that the running process consumed its full quantum.
func ExpiredStop() StopReason {
	return StopReason{Kind: StopExpired}
}

func (r StopReason) String() string {
	if r.Kind == StopExpired {
		return "Expired"
	}
	return fmt.Sprintf("Syscall{%s remaining=%d}", r.Syscall.Kind, r.Remaining)
}

// SyscallResult is the outcome of servicing a syscall. Pid is non-zero only
// when the syscall minted a new process (Fork).
type SyscallResult struct {
	Pid Pid
}

// Success is the result of a syscall that produced no value.
var Success = SyscallResult{}

// NewPidResult reports the pid minted by a Fork.
func NewPidResult(pid Pid) SyscallResult { return SyscallResult{Pid: pid} }
