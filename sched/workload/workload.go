// Package workload defines scripted process programs and the driver that
// executes them against a scheduling policy engine.
//
// A workload suite names programs; each program is a sequence of
// instructions a simulated process steps through when granted the CPU:
// compute ticks, or one of the syscalls the engine services (fork a named
// program, sleep, wait, signal, exit). Suites load from YAML files.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instruction is a single step of a program. Exactly one field must be set.
type Instruction struct {
	Compute int64  `yaml:"compute,omitempty"` // run for this many ticks
	Fork    string `yaml:"fork,omitempty"`    // spawn the named program
	Sleep   int64  `yaml:"sleep,omitempty"`   // block for this many ticks
	Wait    *int64 `yaml:"wait,omitempty"`    // wait on an event id
	Signal  *int64 `yaml:"signal,omitempty"`  // signal an event id
	Exit    bool   `yaml:"exit,omitempty"`    // terminate
}

// isSet counts how many instruction fields are populated.
func (i Instruction) isSet() int {
	n := 0
	if i.Compute > 0 {
		n++
	}
	if i.Fork != "" {
		n++
	}
	if i.Sleep > 0 {
		n++
	}
	if i.Wait != nil {
		n++
	}
	if i.Signal != nil {
		n++
	}
	if i.Exit {
		n++
	}
	return n
}

// Program is a named instruction sequence run by one or more processes.
// A process running off the end of its body exits implicitly.
type Program struct {
	Priority int           `yaml:"priority"`
	Body     []Instruction `yaml:"body"`
}

// Suite is a named collection of programs plus the entry program the driver
// boots as the init process.
type Suite struct {
	Programs map[string]Program `yaml:"programs"`
	Entry    string             `yaml:"entry"`
}

// Load reads and parses a YAML workload suite, validating it.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// Validate checks that the suite is internally consistent: the entry program
// exists, every fork target resolves, and every instruction sets exactly one
// field with in-range values.
func (s *Suite) Validate() error {
	if len(s.Programs) == 0 {
		return fmt.Errorf("workload defines no programs")
	}
	if _, ok := s.Programs[s.Entry]; !ok {
		return fmt.Errorf("entry program %q not defined", s.Entry)
	}
	for name, prog := range s.Programs {
		for idx, ins := range prog.Body {
			if n := ins.isSet(); n != 1 {
				return fmt.Errorf("program %q instruction %d: exactly one field must be set, got %d", name, idx, n)
			}
			if ins.Fork != "" {
				if _, ok := s.Programs[ins.Fork]; !ok {
					return fmt.Errorf("program %q instruction %d: fork target %q not defined", name, idx, ins.Fork)
				}
			}
			if ins.Wait != nil && *ins.Wait < 0 {
				return fmt.Errorf("program %q instruction %d: wait event id must be non-negative, got %d", name, idx, *ins.Wait)
			}
			if ins.Signal != nil && *ins.Signal < 0 {
				return fmt.Errorf("program %q instruction %d: signal event id must be non-negative, got %d", name, idx, *ins.Signal)
			}
		}
	}
	return nil
}
