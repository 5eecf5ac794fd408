// Implements the driver loop: the external collaborator that alternates
// Next/Stop calls, executes program instructions on behalf of the granted
// process, and honors granted quanta.

package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sched-sim/sched"
	"github.com/inference-sim/sched-sim/sched/trace"
)

// defaultMaxSteps bounds the number of scheduling decisions per run, as a
// safety valve against non-terminating workloads.
const defaultMaxSteps = 100000

// execState tracks a live process's position in its program.
type execState struct {
	program string
	ip      int   // index of the next instruction
	done    int64 // compute ticks already consumed within the current instruction
}

// ProcessReport is the final per-process accounting snapshot, captured just
// before the process exits (the engine drops the record on exit).
type ProcessReport struct {
	Pid      sched.Pid
	Program  string
	Priority int
	Timings  sched.Timings
}

// Driver runs a workload suite against a policy engine. It owns the
// next → execute → stop loop the engine itself stays independent of.
type Driver struct {
	engine   sched.Scheduler
	suite    *Suite
	trace    *trace.RunTrace
	procs    map[sched.Pid]*execState
	reports  []ProcessReport
	maxSteps int
}

// NewDriver creates a driver for one run of suite against engine.
// tr may be nil to disable tracing.
func NewDriver(engine sched.Scheduler, suite *Suite, tr *trace.RunTrace) *Driver {
	return &Driver{
		engine:   engine,
		suite:    suite,
		trace:    tr,
		procs:    make(map[sched.Pid]*execState),
		maxSteps: defaultMaxSteps,
	}
}

// Reports returns the final accounting snapshots of exited processes, in
// exit order.
func (d *Driver) Reports() []ProcessReport {
	return d.reports
}

// clock reads the engine's cumulative time when the engine exposes it.
func (d *Driver) clock() int64 {
	if c, ok := d.engine.(interface{ Time() int64 }); ok {
		return c.Time()
	}
	return 0
}

// Run boots the entry program as the init process and drives the engine
// until it reports Done. Returns an error if the engine signals a
// consistency violation or the step limit is exceeded.
func (d *Driver) Run() error {
	entry := d.suite.Programs[d.suite.Entry]
	res := d.engine.Stop(sched.SyscallStop(sched.Fork(entry.Priority), 0))
	d.procs[res.Pid] = &execState{program: d.suite.Entry}
	logrus.Infof("boot: program %q as pid %d", d.suite.Entry, res.Pid)

	for step := 0; ; step++ {
		if step >= d.maxSteps {
			return fmt.Errorf("workload exceeded %d scheduling steps without terminating", d.maxSteps)
		}

		decision := d.engine.Next()
		d.recordDecision(decision)
		logrus.Debugf("<< next: %s at %d ticks", decision, d.clock())

		switch decision.Kind {
		case sched.DecisionDone:
			logrus.Infof("done at %d ticks after %d decisions", d.clock(), step+1)
			return nil

		case sched.DecisionPanic:
			return fmt.Errorf("scheduler lost track of the init process; all processes forced ready")

		case sched.DecisionSleep:
			// The engine already queued the earliest sleeper for its next
			// turn; the sleep duration elapses with no process running.
			logrus.Debugf("idle: sleeping %d ticks", decision.Duration)

		case sched.DecisionRun:
			reason, forkTarget := d.execute(decision.Pid, decision.Timeslice)
			d.report(decision.Pid, reason)
			res := d.engine.Stop(reason)
			d.recordStop(decision.Pid, reason, res)
			if res.Pid != 0 {
				d.procs[res.Pid] = &execState{program: forkTarget}
				logrus.Debugf("forked: program %q as pid %d", forkTarget, res.Pid)
			}
			if reason.Kind == sched.StopSyscall && reason.Syscall.Kind == sched.SyscallExit {
				delete(d.procs, decision.Pid)
			}

		default:
			return fmt.Errorf("unexpected scheduling decision %v", decision)
		}
	}
}

// execute advances pid through its program for up to slice ticks and returns
// the stop reason to report, plus the fork target when the stop is a fork.
func (d *Driver) execute(pid sched.Pid, slice int64) (sched.StopReason, string) {
	st, ok := d.procs[pid]
	if !ok {
		// A pid the driver never registered means the engine and driver
		// disagree about who is alive; treat it as fatal like the engine does.
		panic(fmt.Sprintf("granted pid %d has no execution state", pid))
	}
	prog := d.suite.Programs[st.program]
	left := slice

	for {
		if st.ip >= len(prog.Body) {
			// Running off the end of the program exits implicitly.
			return sched.SyscallStop(sched.Exit(), left), ""
		}
		ins := prog.Body[st.ip]

		if ins.Compute > 0 {
			need := ins.Compute - st.done
			if need > left {
				st.done += left
				return sched.ExpiredStop(), ""
			}
			left -= need
			st.done = 0
			st.ip++
			if left == 0 {
				return sched.ExpiredStop(), ""
			}
			continue
		}

		st.ip++
		switch {
		case ins.Fork != "":
			target := d.suite.Programs[ins.Fork]
			return sched.SyscallStop(sched.Fork(target.Priority), left), ins.Fork
		case ins.Sleep > 0:
			return sched.SyscallStop(sched.SleepFor(ins.Sleep), left), ""
		case ins.Wait != nil:
			return sched.SyscallStop(sched.Wait(sched.EventID(*ins.Wait)), left), ""
		case ins.Signal != nil:
			return sched.SyscallStop(sched.Signal(sched.EventID(*ins.Signal)), left), ""
		case ins.Exit:
			return sched.SyscallStop(sched.Exit(), left), ""
		default:
			panic(fmt.Sprintf("program %q instruction %d is empty", st.program, st.ip-1))
		}
	}
}

// report snapshots a process's final accounting just before it exits.
func (d *Driver) report(pid sched.Pid, reason sched.StopReason) {
	if reason.Kind != sched.StopSyscall || reason.Syscall.Kind != sched.SyscallExit {
		return
	}
	for _, v := range d.engine.List() {
		if v.Pid() == pid {
			d.reports = append(d.reports, ProcessReport{
				Pid:      pid,
				Program:  d.procs[pid].program,
				Priority: v.Priority(),
				Timings:  v.Timings(),
			})
			return
		}
	}
}

func (d *Driver) recordDecision(decision sched.Decision) {
	if !d.trace.Enabled() {
		return
	}
	rec := trace.DecisionRecord{Clock: d.clock()}
	switch decision.Kind {
	case sched.DecisionRun:
		rec.Kind = "run"
		rec.Pid = int(decision.Pid)
		rec.Timeslice = decision.Timeslice
	case sched.DecisionSleep:
		rec.Kind = "sleep"
		rec.Duration = decision.Duration
	case sched.DecisionDone:
		rec.Kind = "done"
	case sched.DecisionPanic:
		rec.Kind = "panic"
	}
	d.trace.RecordDecision(rec)
}

func (d *Driver) recordStop(pid sched.Pid, reason sched.StopReason, res sched.SyscallResult) {
	if !d.trace.Enabled() {
		return
	}
	rec := trace.StopRecord{
		Clock:   d.clock(),
		Pid:     int(pid),
		Expired: reason.Kind == sched.StopExpired,
		NewPid:  int(res.Pid),
	}
	if reason.Kind == sched.StopSyscall {
		rec.Syscall = reason.Syscall.Kind.String()
		rec.Remaining = reason.Remaining
	}
	d.trace.RecordStop(rec)
}
