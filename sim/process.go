// Defines the Process record that models an individual process in the
// simulation. Tracks arrival time, CPU and IO burst requirements, progress,
// and the timestamps needed for turnaround/waiting/response metrics.

package sim

import (
	"fmt"
	"math"
)

// ProcessState represents the lifecycle state of a process.
// Transitions are strictly ready → running → {blocked → ready (repeatable), terminated}.
type ProcessState string

const (
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateBlocked    ProcessState = "blocked"
	StateTerminated ProcessState = "terminated"
)

// StartTimeUnset marks a process that has never been dispatched onto the CPU.
// The Device stamps StartTime on the first dispatch only.
const StartTimeUnset int64 = math.MaxInt64

// ProcessSpec is one immutable workload entry, exactly as parsed from the
// workload file. Specs are shared across runs; mutable state lives in the
// Process records materialized per run.
type ProcessSpec struct {
	Name            string
	ArrivalTime     int64
	TotalCPUBurst   int64
	IOBurstDuration int64
	IOBurstRate     int64 // CPU ticks the process may run before it blocks for IO
}

// Materialize returns a fresh Process with all mutable fields at their
// initial values.
func (ps ProcessSpec) Materialize() *Process {
	return &Process{
		Name:              ps.Name,
		ArrivalTime:       ps.ArrivalTime,
		TotalCPUBurst:     ps.TotalCPUBurst,
		IOBurstDuration:   ps.IOBurstDuration,
		IOBurstRate:       ps.IOBurstRate,
		RemainingCPUBurst: ps.TotalCPUBurst,
		StartTime:         StartTimeUnset,
	}
}

// Process models a single process's lifecycle in the simulation.
// A process alternates between CPU bursts and IO bursts: after IOBurstRate
// CPU ticks it blocks for IOBurstDuration IO ticks, repeatedly, until its
// total CPU demand is exhausted.
type Process struct {
	Name            string
	ArrivalTime     int64
	TotalCPUBurst   int64
	IOBurstDuration int64
	IOBurstRate     int64

	RemainingCPUBurst   int64
	StartTime           int64 // tick of first dispatch; StartTimeUnset until then
	CompletionTime      int64
	LastIOBurstCounter  int64 // CPU ticks since the last IO block
	SavedQuantumContext int64 // quantum ticks consumed when the last IO block hit; read on VRR resume
	State               ProcessState

	seq int64 // enqueue sequence stamped by ReadyQueue, final ordering tie-break
}

// Step runs the process for one CPU tick and returns the resulting state.
// The process terminates when its remaining burst reaches zero on this tick;
// otherwise it blocks once LastIOBurstCounter reaches IOBurstRate.
func (p *Process) Step() ProcessState {
	if p.RemainingCPUBurst <= 0 {
		panic(fmt.Sprintf("Step: process %q has no remaining CPU burst", p.Name))
	}
	p.State = StateRunning
	p.RemainingCPUBurst--
	if p.RemainingCPUBurst == 0 {
		p.State = StateTerminated
	} else if p.LastIOBurstCounter++; p.LastIOBurstCounter >= p.IOBurstRate {
		p.LastIOBurstCounter = 0
		p.State = StateBlocked
	}
	return p.State
}

// TurnaroundTime is the tick span between arrival and termination.
func (p *Process) TurnaroundTime() int64 { return p.CompletionTime - p.ArrivalTime }

// WaitingTime is turnaround time minus the total CPU demand.
func (p *Process) WaitingTime() int64 { return p.TurnaroundTime() - p.TotalCPUBurst }

// ResponseTime is the tick span between arrival and the first dispatch.
func (p *Process) ResponseTime() int64 { return p.StartTime - p.ArrivalTime }

// String returns a human-readable representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("Process: (Name: %s, State: %s, Remaining: %d, ArrivalTime: %d)",
		p.Name, p.State, p.RemainingCPUBurst, p.ArrivalTime)
}
