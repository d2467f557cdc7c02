package sim

import (
	"testing"
)

func drainNames(rq *ReadyQueue) []string {
	names := make([]string, 0, rq.Len())
	for !rq.Empty() {
		names = append(names, rq.PopFront().Name)
	}
	return names
}

func TestReadyQueue_FIFO_PreservesInsertionOrder(t *testing.T) {
	// GIVEN a FIFO queue with three processes of unequal bursts
	rq := NewReadyQueue(PolicyFIFO)
	rq.Push(&Process{Name: "A", TotalCPUBurst: 9})
	rq.Push(&Process{Name: "B", TotalCPUBurst: 1})
	rq.Push(&Process{Name: "C", TotalCPUBurst: 5})

	// WHEN drained THEN insertion order is preserved
	got := drainNames(rq)
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReadyQueue_ShortestTotalBurst_OrdersByBurstThenArrival(t *testing.T) {
	// GIVEN a shortest-total-burst queue
	rq := NewReadyQueue(PolicyShortestTotalBurst)
	rq.Push(&Process{Name: "A", TotalCPUBurst: 5, ArrivalTime: 0})
	rq.Push(&Process{Name: "B", TotalCPUBurst: 3, ArrivalTime: 2})
	rq.Push(&Process{Name: "C", TotalCPUBurst: 3, ArrivalTime: 1})

	// WHEN drained THEN burst ascending wins, arrival breaks the tie
	got := drainNames(rq)
	want := []string{"C", "B", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReadyQueue_ShortestRemainingBurst_IgnoresTotalBurst(t *testing.T) {
	// GIVEN a shortest-remaining-burst queue where totals and remainders disagree
	rq := NewReadyQueue(PolicyShortestRemainingBurst)
	rq.Push(&Process{Name: "A", TotalCPUBurst: 10, RemainingCPUBurst: 2})
	rq.Push(&Process{Name: "B", TotalCPUBurst: 3, RemainingCPUBurst: 3})

	// WHEN peeked THEN the smaller remainder is at the front
	if got := rq.Peek().Name; got != "A" {
		t.Errorf("Peek: got %s, want A", got)
	}
}

func TestReadyQueue_EqualKeys_DequeueInEnqueueOrder(t *testing.T) {
	// GIVEN four processes equal on burst and arrival
	rq := NewReadyQueue(PolicyShortestTotalBurst)
	for _, name := range []string{"A", "B", "C", "D"} {
		rq.Push(&Process{Name: name, TotalCPUBurst: 4, ArrivalTime: 7})
	}

	// WHEN drained THEN the enqueue sequence decides, deterministically
	got := drainNames(rq)
	want := []string{"A", "B", "C", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReadyQueue_PeekEmpty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	rq := NewReadyQueue(PolicyFIFO)

	// WHEN Peek is called THEN it returns nil without panicking
	if got := rq.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestReadyQueue_PopEmpty_Panics(t *testing.T) {
	// GIVEN an empty queue
	rq := NewReadyQueue(PolicyShortestRemainingBurst)

	// WHEN popped THEN it panics (invariant violation)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on PopFront of empty queue")
		}
	}()
	rq.PopFront()
}

func TestReadyQueue_Clear_EmptiesTheQueue(t *testing.T) {
	// GIVEN a queue with two processes
	rq := NewReadyQueue(PolicyFIFO)
	rq.Push(&Process{Name: "A"})
	rq.Push(&Process{Name: "B"})

	// WHEN cleared
	rq.Clear()

	// THEN it reports empty
	if !rq.Empty() || rq.Len() != 0 {
		t.Errorf("after Clear: Empty=%v Len=%d", rq.Empty(), rq.Len())
	}
}
