// Implements the Device, the single-CPU/single-IO-device simulation engine.
// The Device owns every queue and slot of one run and advances simulated
// time one tick at a time through a fixed phase order.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Discipline selects the scheduling algorithm for a run.
type Discipline string

const (
	SJF  Discipline = "sjf"  // shortest-job-first, non-preemptive
	SRTF Discipline = "srtf" // shortest-remaining-time-first, preemptive
	RR   Discipline = "rr"   // round robin
	VRR  Discipline = "vrr"  // variable round robin
)

// ParseDiscipline maps a selector token to a Discipline. Both the short
// tokens (sjf, srtf, rr, vrr) and the spelled-out forms are accepted.
func ParseDiscipline(token string) (Discipline, error) {
	switch token {
	case "sjf", "shortest-job-first":
		return SJF, nil
	case "srtf", "shortest-remaining-time-first":
		return SRTF, nil
	case "rr", "round-robin":
		return RR, nil
	case "vrr", "variable-round-robin":
		return VRR, nil
	}
	return "", fmt.Errorf("unknown scheduling discipline %q", token)
}

// queuePolicy returns the ready-queue ordering used by the discipline.
func (d Discipline) queuePolicy() QueuePolicy {
	switch d {
	case SJF:
		return PolicyShortestTotalBurst
	case SRTF:
		return PolicyShortestRemainingBurst
	default:
		return PolicyFIFO
	}
}

// usesQuantum reports whether the discipline preempts on a time quantum.
func (d Discipline) usesQuantum() bool { return d == RR || d == VRR }

// Device owns the CPU slot, the IO slot, and every queue of one simulation
// run. A Device is single-use: construct a fresh one per (workload,
// discipline) run, since the tick counters and process records it holds are
// mutated in place.
type Device struct {
	discipline  Discipline
	timeQuantum int64 // zero for disciplines without a quantum

	backlog   []*Process  // not yet arrived, file order
	readyQ    *ReadyQueue // ordering bound to the discipline
	ioQ       *ReadyQueue // FIFO
	auxQ      *ReadyQueue // FIFO resume queue, populated under VRR only
	running   *Process    // CPU slot
	ioRunning *Process    // IO slot
	completed []*Process

	outstanding int   // processes not yet terminated
	ticks       int64 // current tick
	idleTicks   int64
	// quantumElapsed counts the CPU ticks the current occupant has already
	// executed. It is advanced at the end of every tick; a fresh dispatch
	// rewinds it so it reads zero on the occupant's first executed tick.
	quantumElapsed int64
	ioProgress     int64 // IO ticks consumed by ioRunning in its current burst

	// horizon is a failsafe bound on the tick counter. Any terminating
	// workload finishes well inside it, so crossing it means the
	// configuration cannot terminate.
	horizon int64

	trace *trace.Trace
}

// NewDevice validates the workload and builds a run-ready engine. Every
// process is materialized fresh from its spec, so repeated runs over the
// same specs are independent. The trace may be nil.
func NewDevice(specs []ProcessSpec, discipline Discipline, timeQuantum int64, tr *trace.Trace) (*Device, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("empty workload")
	}
	if discipline.usesQuantum() && timeQuantum < 1 {
		return nil, fmt.Errorf("discipline %s requires a time quantum >= 1, got %d", discipline, timeQuantum)
	}
	if !discipline.usesQuantum() {
		timeQuantum = 0
	}

	seen := make(map[string]bool, len(specs))
	backlog := make([]*Process, 0, len(specs))
	var horizon int64 = 16
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("process with empty name")
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate process name %q", spec.Name)
		}
		seen[spec.Name] = true
		if spec.TotalCPUBurst < 1 {
			return nil, fmt.Errorf("process %q: total CPU burst must be >= 1, got %d", spec.Name, spec.TotalCPUBurst)
		}
		backlog = append(backlog, spec.Materialize())

		// Worst-case span contribution: exclusive CPU time, serialized IO
		// time for every possible block, one dispatch-latency tick per
		// (re)dispatch, plus the arrival offset. Doubled below for slack.
		blocks := spec.TotalCPUBurst/max(spec.IOBurstRate, 1) + 1
		horizon += spec.ArrivalTime + spec.TotalCPUBurst + blocks*(spec.IOBurstDuration+2) + 4
	}

	return &Device{
		discipline:  discipline,
		timeQuantum: timeQuantum,
		backlog:     backlog,
		readyQ:      NewReadyQueue(discipline.queuePolicy()),
		ioQ:         NewReadyQueue(PolicyFIFO),
		auxQ:        NewReadyQueue(PolicyFIFO),
		completed:   make([]*Process, 0, len(specs)),
		outstanding: len(backlog),
		horizon:     2 * horizon,
		trace:       tr,
	}, nil
}

// Run advances the simulation tick by tick until every process has
// terminated, then returns the aggregated report. The only error a valid
// configuration cannot produce is the failsafe-horizon overrun.
func (d *Device) Run() (*Report, error) {
	logrus.Infof("starting %s run: %d processes, quantum=%d", d.discipline, d.outstanding, d.timeQuantum)

	for d.outstanding > 0 {
		if d.ticks > d.horizon {
			return nil, fmt.Errorf("run passed %d ticks with %d processes outstanding; workload cannot terminate",
				d.horizon, d.outstanding)
		}
		if d.running == nil {
			d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Action: trace.ActionIdle})
		}

		d.admitArrivals()
		if d.running != nil {
			d.stepCPU()
		}
		d.stepIO()
		if d.shouldSchedule() {
			d.dispatch()
		}

		if d.running == nil {
			d.idleTicks++
		}
		d.ticks++
		d.quantumElapsed++
	}

	// The terminating tick frees the CPU before the idle bookkeeping runs,
	// so the loop overcounts one tick and one idle tick. Backing both out
	// leaves the tick total equal to the last completion tick.
	d.ticks--
	d.idleTicks--

	logrus.Infof("%s run complete: %d processes in %d ticks (%d idle)",
		d.discipline, len(d.completed), d.ticks, d.idleTicks)
	return ComputeReport(d.discipline, d.completed, d.ticks, d.idleTicks)
}

// admitArrivals moves every backlog process whose arrival tick is now onto
// the ready queue, preserving file order.
func (d *Device) admitArrivals() {
	keep := d.backlog[:0]
	for _, p := range d.backlog {
		if p.ArrivalTime == d.ticks {
			p.State = StateReady
			d.readyQ.Push(p)
			d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Process: p.Name, Action: trace.ActionArrive})
			logrus.Debugf("[tick %07d] %s arrived", d.ticks, p.Name)
		} else {
			keep = append(keep, p)
		}
	}
	d.backlog = keep
}

// stepCPU executes one CPU tick for the slot occupant and routes it on
// termination or IO block.
func (d *Device) stepCPU() {
	p := d.running
	switch p.Step() {
	case StateTerminated:
		p.CompletionTime = d.ticks
		d.completed = append(d.completed, p)
		d.running = nil
		d.outstanding--
		d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Process: p.Name, Action: trace.ActionComplete})
		logrus.Debugf("[tick %07d] %s completed", d.ticks, p.Name)
	case StateBlocked:
		p.SavedQuantumContext = d.quantumConsumed()
		d.ioQ.Push(p)
		d.running = nil
		d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Process: p.Name, Action: trace.ActionQueueIO, Counter: p.RemainingCPUBurst})
		logrus.Debugf("[tick %07d] %s blocked for IO, remaining=%d", d.ticks, p.Name, p.RemainingCPUBurst)
	default:
		d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Process: p.Name, Action: trace.ActionRun, Counter: p.RemainingCPUBurst})
	}
}

// quantumConsumed reports how many ticks of the current quantum the running
// process has used, counting the tick that is blocking it. A block landing
// exactly on a quantum boundary reads as zero, which grants a full quantum
// on resume. Only variable round robin ever reads the saved value, so every
// other discipline stamps zero.
func (d *Device) quantumConsumed() int64 {
	if d.discipline != VRR || d.timeQuantum == 0 {
		return 0
	}
	return (d.quantumElapsed + 1) % d.timeQuantum
}

// stepIO advances the IO slot occupant by one tick, then refills the slot
// from the IO queue if it is free.
func (d *Device) stepIO() {
	if d.ioRunning != nil {
		d.ioProgress++
		p := d.ioRunning
		if d.ioProgress >= p.IOBurstDuration {
			p.State = StateReady
			if d.discipline == VRR {
				d.auxQ.Push(p)
			} else {
				d.readyQ.Push(p)
			}
			d.ioRunning = nil
			d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceIO, Process: p.Name, Action: trace.ActionIOComplete, Counter: d.ioProgress})
			logrus.Debugf("[tick %07d] %s finished IO", d.ticks, p.Name)
		} else {
			d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceIO, Process: p.Name, Action: trace.ActionIORun, Counter: d.ioProgress})
		}
	}

	if d.ioRunning == nil && !d.ioQ.Empty() {
		d.ioRunning = d.ioQ.PopFront()
		d.ioProgress = 0
		d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceIO, Process: d.ioRunning.Name, Action: trace.ActionSchedule})
	}
}

// shouldSchedule evaluates the discipline's dispatch predicate for this tick.
func (d *Device) shouldSchedule() bool {
	switch d.discipline {
	case SJF:
		return d.running == nil && !d.readyQ.Empty()
	case SRTF:
		if d.readyQ.Empty() {
			return false
		}
		return d.running == nil || d.readyQ.Peek().RemainingCPUBurst < d.running.RemainingCPUBurst
	case RR:
		return !d.readyQ.Empty() && (d.running == nil || d.quantumElapsed+1 >= d.timeQuantum)
	case VRR:
		return (!d.readyQ.Empty() || !d.auxQ.Empty()) &&
			(d.running == nil || d.quantumElapsed+1 >= d.timeQuantum)
	}
	panic(fmt.Sprintf("unknown discipline %q", d.discipline))
}

// dispatch installs the next process into the CPU slot, preempting and
// re-queueing the current occupant if there is one. Under VRR a process
// resuming from IO with a partial quantum outranks fresh ready-queue
// entries and is restored exactly the allotment it had left.
func (d *Device) dispatch() {
	var next *Process
	if !d.auxQ.Empty() {
		next = d.auxQ.PopFront()
		d.quantumElapsed = next.SavedQuantumContext - 1
	} else {
		next = d.readyQ.PopFront()
		d.quantumElapsed = -1
	}

	if d.running != nil {
		d.running.State = StateReady
		d.readyQ.Push(d.running)
	}

	next.State = StateRunning
	if d.ticks < next.StartTime {
		next.StartTime = d.ticks
	}
	d.running = next
	d.trace.Append(trace.Record{Tick: d.ticks, Device: trace.DeviceCPU, Process: next.Name, Action: trace.ActionSchedule})
	logrus.Debugf("[tick %07d] %s dispatched", d.ticks, next.Name)
}
