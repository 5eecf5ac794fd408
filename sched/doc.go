// Package sched provides the core discrete-event CPU-scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - process.go: the process record, its lifecycle states, and the
//     read-only ProcessView contract shared by all policies
//   - decision.go: the vocabulary exchanged with the driver (Decision,
//     StopReason, Syscall, SyscallResult)
//   - roundrobin.go: the round-robin policy engine (queue bookkeeping,
//     timeslice accounting, the Next/Stop state machine)
//
// # Architecture
//
// The engine has no clock of its own and performs no I/O. An external
// driver alternates calls:
//
//	Next() -> Decision          pick a process and grant it a timeslice
//	(driver executes the process for up to the granted quantum)
//	Stop(reason) -> SyscallResult   report how the grant ended
//
// Time advances only through the tick counts the driver reports back.
// Sub-packages hold the collaborators the engine itself stays independent
// of:
//   - sched/workload/: scripted process programs and the driver loop
//   - sched/trace/: decision-trace recording for post-run analysis
//
// # Concurrency
//
// An engine instance is a purely sequential state machine. It is owned by
// exactly one driver and must not be shared across goroutines; create one
// instance per simulation run instead of adding locking.
package sched
