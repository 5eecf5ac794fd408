package sched

import "fmt"

// Config groups the construction-time parameters of a policy engine.
type Config struct {
	// Timeslice is the quantum granted to a fresh process, in ticks (must be > 0).
	Timeslice int64
	// MinRemaining is the threshold below which a partial quantum is not
	// re-granted; a process whose remaining quantum falls short rotates to
	// the ready-queue tail instead of thrashing on a tiny allotment.
	MinRemaining int64
}

// NewConfig creates a Config from the given quantum parameters.
func NewConfig(timeslice, minRemaining int64) Config {
	return Config{Timeslice: timeslice, MinRemaining: minRemaining}
}

// Validate checks that the quantum parameters are in range.
func (c Config) Validate() error {
	if c.Timeslice <= 0 {
		return fmt.Errorf("timeslice must be positive, got %d", c.Timeslice)
	}
	if c.MinRemaining < 0 {
		return fmt.Errorf("minimum remaining timeslice must be non-negative, got %d", c.MinRemaining)
	}
	return nil
}
