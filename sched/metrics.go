// Aggregates per-process timing counters into run-level metrics for final
// reporting.

package sched

import "fmt"

// Metrics aggregates statistics over a set of process views for final
// reporting. Useful for comparing scheduling policies over one workload.
type Metrics struct {
	Processes      int   // number of processes observed
	TotalWaiting   int64 // sum of waiting accumulators
	TotalExecution int64 // sum of execution accumulators
	TotalSyscalls  int64 // sum of serviced-syscall counters
	Clock          int64 // cumulative simulated time at collection
}

// CollectMetrics sums timing counters over views at the given clock value.
func CollectMetrics(views []ProcessView, clock int64) *Metrics {
	m := &Metrics{Processes: len(views), Clock: clock}
	for _, v := range views {
		t := v.Timings()
		m.TotalWaiting += t.Waiting
		m.TotalExecution += t.Execution
		m.TotalSyscalls += t.Syscalls
	}
	return m
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Scheduling Metrics ===")
	fmt.Printf("Simulated time       : %d ticks\n", m.Clock)
	fmt.Printf("Processes observed   : %d\n", m.Processes)
	fmt.Printf("Total execution time : %d ticks\n", m.TotalExecution)
	fmt.Printf("Total waiting time   : %d ticks\n", m.TotalWaiting)
	fmt.Printf("Serviced syscalls    : %d\n", m.TotalSyscalls)
	if m.Processes > 0 {
		fmt.Printf("Average waiting time : %.2f ticks\n", float64(m.TotalWaiting)/float64(m.Processes))
	}
}
