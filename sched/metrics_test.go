package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectMetrics_SumsTimings(t *testing.T) {
	views := []ProcessView{
		&rrProcess{pid: 1, timings: Timings{Waiting: 4, Syscalls: 2, Execution: 6}},
		&rrProcess{pid: 2, timings: Timings{Waiting: 1, Syscalls: 1, Execution: 3}},
	}

	m := CollectMetrics(views, 9)

	assert.Equal(t, 2, m.Processes)
	assert.Equal(t, int64(5), m.TotalWaiting)
	assert.Equal(t, int64(3), m.TotalSyscalls)
	assert.Equal(t, int64(9), m.TotalExecution)
	assert.Equal(t, int64(9), m.Clock)
}

func TestCollectMetrics_EmptyViews(t *testing.T) {
	m := CollectMetrics(nil, 0)
	assert.Equal(t, 0, m.Processes)
	assert.Equal(t, int64(0), m.TotalWaiting)
}
