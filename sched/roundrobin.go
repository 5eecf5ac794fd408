// Implements the round-robin policy engine: ready/sleep queue bookkeeping,
// timeslice accounting, and the Next/Stop decision state machine.

package sched

import "fmt"

// initPid is the pid of the first process forked into the engine. While any
// process is ready, init must be tracked in one of the two queues; losing it
// means the bookkeeping is inconsistent.
const initPid Pid = 1

// RoundRobin schedules processes in FIFO order with a fixed quantum.
//
// The running process is kept at the head of the ready queue between a Run
// grant and the matching Stop. A process preempted by quantum expiry rotates
// to the tail with a fresh quantum; a process stopping on a syscall keeps the
// unused remainder of its quantum and is only re-granted once the remainder
// meets the configured minimum, otherwise it rotates and the next candidate
// runs instead.
type RoundRobin struct {
	cfg       Config
	processes []*rrProcess
	ready     PidQueue
	sleeping  PidQueue

	// nrProcesses counts processes created so far and is the source of new
	// pids; it never decreases, so pids are not reused.
	nrProcesses int
	// time is the cumulative simulated time. It advances only through the
	// tick counts the driver reports via Stop.
	time int64
}

// NewRoundRobin creates an empty round-robin engine.
// Panics if cfg is invalid; callers validate user input with cfg.Validate.
func NewRoundRobin(cfg Config) *RoundRobin {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid scheduler config: %v", err))
	}
	return &RoundRobin{cfg: cfg}
}

// Time returns the cumulative simulated time in ticks.
func (rr *RoundRobin) Time() int64 {
	return rr.time
}

// Next returns the next scheduling decision.
//
// The head of the ready queue is the first candidate. A candidate returning
// from sleep first has its quantum restored to full and the slept time folded
// into its waiting accumulator. A candidate whose remaining quantum meets the
// minimum is granted exactly that remainder; one that falls short rotates to
// the tail and the new head is granted unconditionally (a fresh full quantum
// if it has nothing left). With an empty ready queue the earliest sleeper
// determines a Sleep decision; with both queues empty the run is Done.
func (rr *RoundRobin) Next() Decision {
	if rr.ready.Len() > 0 && !rr.tracksInit() {
		// Bookkeeping lost track of init while others are ready. Force every
		// process back to Ready and surface the violation.
		for _, p := range rr.processes {
			p.state = StateReady
		}
		return Decision{Kind: DecisionPanic}
	}

	if pid, ok := rr.ready.Peek(); ok {
		p := rr.lookup(pid)
		if p.sleepTime > 0 {
			// Back from sleep: restore the full quantum and count the slept
			// time as waiting.
			p.remaining = p.totalTime
			p.timings.Waiting += p.sleepTime
			p.sleepTime = 0
		}
		if p.remaining > 0 && p.remaining >= rr.cfg.MinRemaining {
			p.state = StateRunning
			return NewRunDecision(pid, p.remaining)
		}

		// Remainder too small to be worth granting: rotate and take the new
		// head, which runs either on its untouched remainder or on a fresh
		// full quantum.
		p.state = StateReady
		rr.ready.Rotate()
		next, _ := rr.ready.Peek() // non-empty: the rotated pid is still queued
		q := rr.lookup(next)
		q.state = StateRunning
		if q.remaining == 0 {
			q.remaining = rr.cfg.Timeslice
		}
		return NewRunDecision(next, q.remaining)
	}

	if pid, ok := rr.sleeping.Dequeue(); ok {
		// The earliest sleeper wakes next regardless of delay length; see the
		// sleep-queue ordering note in the package tests. The woken pid queues
		// at the ready tail and its sleep bookkeeping unwinds once it reaches
		// the head.
		p := rr.lookup(pid)
		rr.ready.Enqueue(pid)
		return NewSleepDecision(p.sleepTime)
	}

	return Decision{Kind: DecisionDone}
}

// Stop reports how the most recent Run grant ended.
//
// On a syscall stop the consumed time (remaining at grant minus the reported
// unused ticks) is charged before branching: to global time, to the runner's
// execution accumulator and syscall counter, and to the waiting accumulator
// of every other ready process. On expiry the full granted quantum is charged
// the same way, except it also lands in the runner's own waiting accumulator
// and its syscall counter is untouched.
func (rr *RoundRobin) Stop(reason StopReason) SyscallResult {
	if reason.Kind == StopExpired {
		rr.expire()
		return Success
	}

	sc := reason.Syscall
	switch sc.Kind {
	case SyscallFork:
		rr.accountSyscall(reason.Remaining)
		child := newRRProcess(Pid(rr.nrProcesses+1), sc.Priority, rr.cfg.Timeslice)
		rr.nrProcesses++
		rr.processes = append(rr.processes, child)
		rr.ready.Enqueue(child.pid)
		return NewPidResult(child.pid)

	case SyscallSleep:
		rr.accountSyscall(reason.Remaining)
		if pid, ok := rr.ready.Dequeue(); ok {
			p := rr.lookup(pid)
			p.sleepTime = sc.Duration
			p.state = StateWaiting
			rr.sleeping.Enqueue(pid)
		}
		return Success

	case SyscallWait, SyscallSignal:
		// Placeholders: the syscall is charged but nothing blocks or wakes.
		// An event-aware policy would park the caller in an event-wait table
		// here and move waiters to the ready queue on Signal.
		rr.accountSyscall(reason.Remaining)
		return Success

	case SyscallExit:
		if pid, ok := rr.ready.Dequeue(); ok {
			p := rr.lookup(pid)
			elapsed := p.remaining - reason.Remaining
			rr.time += elapsed
			for _, other := range rr.ready.Items() {
				rr.lookup(other).timings.Waiting += elapsed
			}
			rr.remove(pid)
		}
		return Success

	default:
		panic(fmt.Sprintf("unhandled syscall kind %v", sc.Kind))
	}
}

// List returns read-only views of every live process in storage order.
func (rr *RoundRobin) List() []ProcessView {
	views := make([]ProcessView, 0, len(rr.processes))
	for _, p := range rr.processes {
		views = append(views, p)
	}
	return views
}

// accountSyscall charges the ticks the running process consumed up to the
// syscall point. The running process is the head of the ready queue; when the
// queue is empty there is no running process yet (the initial Fork arrives
// before any grant) and nothing is charged.
func (rr *RoundRobin) accountSyscall(remaining int64) {
	pid, ok := rr.ready.Peek()
	if !ok {
		return
	}
	p := rr.lookup(pid)
	elapsed := p.remaining - remaining
	rr.time += elapsed
	p.timings.Syscalls++
	p.timings.Execution += elapsed
	for _, other := range rr.ready.Items()[1:] {
		rr.lookup(other).timings.Waiting += elapsed
	}
	p.remaining = remaining
}

// expire charges the full granted quantum to the running process, resets its
// quantum, and rotates it to the ready-queue tail.
func (rr *RoundRobin) expire() {
	pid, ok := rr.ready.Dequeue()
	if !ok {
		return
	}
	p := rr.lookup(pid)
	used := p.remaining // the grant was exactly the remaining quantum
	rr.time += used
	p.timings.Execution += used
	p.timings.Waiting += used
	for _, other := range rr.ready.Items() {
		rr.lookup(other).timings.Waiting += used
	}
	p.remaining = rr.cfg.Timeslice
	p.state = StateReady
	rr.ready.Enqueue(pid)
}

// tracksInit reports whether the init process is present in either queue.
func (rr *RoundRobin) tracksInit() bool {
	return rr.ready.Contains(initPid) || rr.sleeping.Contains(initPid)
}

// lookup resolves a queued pid to its record. A queued pid without a record
// means driver/engine desynchronization, which the contract treats as fatal.
func (rr *RoundRobin) lookup(pid Pid) *rrProcess {
	for _, p := range rr.processes {
		if p.pid == pid {
			return p
		}
	}
	panic(fmt.Sprintf("pid %d not in scheduler bookkeeping", pid))
}

func (rr *RoundRobin) remove(pid Pid) {
	for i, p := range rr.processes {
		if p.pid == pid {
			rr.processes = append(rr.processes[:i], rr.processes[i+1:]...)
			return
		}
	}
}
