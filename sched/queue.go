// Implements the PidQueue, the FIFO pid sequence backing both the ready
// queue and the sleep queue.

package sched

import (
	"fmt"
	"strings"
)

// PidQueue is a slice-backed FIFO of pids. The round-robin engine keeps the
// running process at the front of its ready queue and rotates pids to the
// back on preemption or when their remaining quantum is too small to grant.
type PidQueue struct {
	queue []Pid
}

// Enqueue adds a pid to the back of the queue.
func (q *PidQueue) Enqueue(pid Pid) {
	q.queue = append(q.queue, pid)
}

// Len returns the number of pids in the queue.
func (q *PidQueue) Len() int {
	return len(q.queue)
}

// Peek returns the pid at the front of the queue without removing it.
// The second return value is false if the queue is empty.
func (q *PidQueue) Peek() (Pid, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	return q.queue[0], true
}

// Dequeue removes and returns the pid at the front of the queue.
// The second return value is false if the queue is empty.
func (q *PidQueue) Dequeue() (Pid, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	pid := q.queue[0]
	q.queue = q.queue[1:]
	return pid, true
}

// Rotate moves the front pid to the back of the queue.
// It is a no-op on an empty queue.
func (q *PidQueue) Rotate() {
	if pid, ok := q.Dequeue(); ok {
		q.Enqueue(pid)
	}
}

// Contains reports whether pid is anywhere in the queue.
func (q *PidQueue) Contains(pid Pid) bool {
	for _, p := range q.queue {
		if p == pid {
			return true
		}
	}
	return false
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sched package may iterate over it but MUST NOT append to or reslice it.
func (q *PidQueue) Items() []Pid {
	return q.queue
}

func (q *PidQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, pid := range q.queue {
		sb.WriteString(fmt.Sprint(pid))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
