package sched

import "testing"

func TestPidQueue_EnqueueDequeue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with pids [1, 2, 3]
	q := &PidQueue{}
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	// WHEN all pids are dequeued
	var got []Pid
	for q.Len() > 0 {
		pid, ok := q.Dequeue()
		if !ok {
			t.Fatal("Dequeue reported empty on a non-empty queue")
		}
		got = append(got, pid)
	}

	// THEN they come out in enqueue order
	want := []Pid{1, 2, 3}
	for i, pid := range got {
		if pid != want[i] {
			t.Errorf("Dequeue order[%d]: got %d, want %d", i, pid, want[i])
		}
	}
}

func TestPidQueue_Peek_Empty_ReportsNotOK(t *testing.T) {
	// GIVEN an empty queue
	q := &PidQueue{}

	// WHEN Peek() is called
	_, ok := q.Peek()

	// THEN it reports not ok
	if ok {
		t.Error("Peek on empty queue reported ok")
	}
}

func TestPidQueue_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with pids [7, 8]
	q := &PidQueue{}
	q.Enqueue(7)
	q.Enqueue(8)

	// WHEN Peek() is called
	pid, ok := q.Peek()

	// THEN it returns the front pid and leaves the queue intact
	if !ok || pid != 7 {
		t.Errorf("Peek: got (%d, %v), want (7, true)", pid, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
}

func TestPidQueue_Rotate_MovesFrontToBack(t *testing.T) {
	// GIVEN a queue with pids [1, 2, 3]
	q := &PidQueue{}
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	// WHEN Rotate() is called
	q.Rotate()

	// THEN the order is [2, 3, 1]
	want := []Pid{2, 3, 1}
	for i, pid := range q.Items() {
		if pid != want[i] {
			t.Errorf("Rotate order[%d]: got %d, want %d", i, pid, want[i])
		}
	}
}

func TestPidQueue_Rotate_EmptyQueue_NoOp(t *testing.T) {
	// GIVEN an empty queue
	q := &PidQueue{}

	// WHEN Rotate() is called
	q.Rotate()

	// THEN the queue is still empty
	if q.Len() != 0 {
		t.Errorf("Rotate on empty queue: Len() got %d, want 0", q.Len())
	}
}

func TestPidQueue_Contains(t *testing.T) {
	// GIVEN a queue with pids [4, 5]
	q := &PidQueue{}
	q.Enqueue(4)
	q.Enqueue(5)

	// THEN Contains reports membership correctly
	if !q.Contains(4) || !q.Contains(5) {
		t.Error("Contains missed a queued pid")
	}
	if q.Contains(6) {
		t.Error("Contains reported a pid that was never enqueued")
	}
}

func TestPidQueue_String(t *testing.T) {
	// GIVEN a queue with pids [1, 2]
	q := &PidQueue{}
	q.Enqueue(1)
	q.Enqueue(2)

	// THEN String renders the contents
	if got := q.String(); got != "[1 2]" {
		t.Errorf("String: got %q, want %q", got, "[1 2]")
	}
}
