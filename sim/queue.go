// Implements the ready queue and its three ordering policies. The IO queue
// and the variable-round-robin auxiliary queue reuse the FIFO variant.

package sim

import (
	"fmt"

	"github.com/emirpasic/gods/queues"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// QueuePolicy selects the ordering of a ready queue. The variant is bound
// once when the Device is constructed; there is no per-tick policy dispatch.
type QueuePolicy int

const (
	// PolicyFIFO preserves insertion order (round robin, variable round robin,
	// and every IO/auxiliary queue).
	PolicyFIFO QueuePolicy = iota
	// PolicyShortestTotalBurst orders by TotalCPUBurst ascending (shortest-job-first).
	PolicyShortestTotalBurst
	// PolicyShortestRemainingBurst orders by RemainingCPUBurst ascending
	// (shortest-remaining-time-first).
	PolicyShortestRemainingBurst
)

// ReadyQueue holds processes eligible for dispatch, ordered per its policy.
// Each Push stamps a monotonic sequence number so that processes equal on
// burst and arrival still dequeue in a deterministic order.
type ReadyQueue struct {
	q   queues.Queue
	seq int64
}

// NewReadyQueue creates a queue with the given ordering policy.
// Panics on an unrecognized policy.
func NewReadyQueue(policy QueuePolicy) *ReadyQueue {
	switch policy {
	case PolicyFIFO:
		return &ReadyQueue{q: linkedlistqueue.New()}
	case PolicyShortestTotalBurst:
		return &ReadyQueue{q: priorityqueue.NewWith(byTotalBurst)}
	case PolicyShortestRemainingBurst:
		return &ReadyQueue{q: priorityqueue.NewWith(byRemainingBurst)}
	default:
		panic(fmt.Sprintf("unknown queue policy %d", policy))
	}
}

// Push enqueues a process.
func (rq *ReadyQueue) Push(p *Process) {
	p.seq = rq.seq
	rq.seq++
	rq.q.Enqueue(p)
}

// PopFront removes and returns the highest-priority process.
// Popping an empty queue is a programming error and panics.
func (rq *ReadyQueue) PopFront() *Process {
	v, ok := rq.q.Dequeue()
	if !ok {
		panic("PopFront: empty queue")
	}
	return v.(*Process)
}

// Peek returns the highest-priority process without removing it,
// or nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	v, ok := rq.q.Peek()
	if !ok {
		return nil
	}
	return v.(*Process)
}

// Empty reports whether the queue holds no processes.
func (rq *ReadyQueue) Empty() bool { return rq.q.Empty() }

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int { return rq.q.Size() }

// Clear removes all processes from the queue.
func (rq *ReadyQueue) Clear() { rq.q.Clear() }

// byTotalBurst orders by total CPU burst ascending, ties by arrival time,
// then by enqueue sequence for determinism.
func byTotalBurst(a, b interface{}) int {
	pa, pb := a.(*Process), b.(*Process)
	if c := utils.Int64Comparator(pa.TotalCPUBurst, pb.TotalCPUBurst); c != 0 {
		return c
	}
	return tieBreak(pa, pb)
}

// byRemainingBurst orders by remaining CPU burst ascending, ties by arrival
// time, then by enqueue sequence.
func byRemainingBurst(a, b interface{}) int {
	pa, pb := a.(*Process), b.(*Process)
	if c := utils.Int64Comparator(pa.RemainingCPUBurst, pb.RemainingCPUBurst); c != 0 {
		return c
	}
	return tieBreak(pa, pb)
}

func tieBreak(pa, pb *Process) int {
	if c := utils.Int64Comparator(pa.ArrivalTime, pb.ArrivalTime); c != 0 {
		return c
	}
	return utils.Int64Comparator(pa.seq, pb.seq)
}
