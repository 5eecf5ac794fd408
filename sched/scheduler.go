package sched

import (
	"fmt"
	"sort"
)

// Scheduler is the policy engine contract. A driver alternates Next and Stop
// calls; out-of-order calls are a contract violation the engine is free to
// treat as fatal (see package doc).
type Scheduler interface {
	// Next inspects and may reorder the ready queue, then returns a
	// scheduling decision. It never changes queue membership and never
	// advances time.
	Next() Decision
	// Stop reports how the most recent Run grant ended and applies the
	// timeslice accounting to the process at the head of the ready queue.
	Stop(reason StopReason) SyscallResult
	// List returns read-only views of every live process in internal
	// storage order (not queue order).
	List() []ProcessView
}

// validPolicies is the set of recognized policy names.
// Shared by IsValidPolicy and NewScheduler to avoid duplication.
var validPolicies = map[string]bool{"": true, "round-robin": true}

// IsValidPolicy returns true if name is a recognized scheduling policy.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// PolicyNames returns the recognized policy names, sorted, without the
// empty-string default alias.
func PolicyNames() []string {
	names := make([]string, 0, len(validPolicies))
	for name := range validPolicies {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a Scheduler by policy name.
// Empty string defaults to round robin (for CLI flag default compatibility).
// Panics on unrecognized names or invalid configuration; callers validate
// user input with IsValidPolicy and Config.Validate first.
func NewScheduler(name string, cfg Config) Scheduler {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
	switch name {
	case "", "round-robin":
		return NewRoundRobin(cfg)
	default:
		panic(fmt.Sprintf("unhandled scheduling policy %q", name))
	}
}
