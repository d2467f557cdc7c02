// Package trace provides tick-trace recording for simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Device identifies which simulated device produced a record.
type Device string

const (
	DeviceCPU Device = "CPU"
	DeviceIO  Device = "IO"
)

// Action enumerates what happened to a process on a device at one tick.
type Action string

const (
	// ActionArrive marks a process entering the simulation from the backlog.
	ActionArrive Action = "arrive"
	// ActionSchedule marks a dispatch into the CPU or IO slot.
	ActionSchedule Action = "sched"
	// ActionRun marks one executed CPU tick that left the process running.
	ActionRun Action = "run"
	// ActionQueueIO marks a CPU tick that blocked the process for IO.
	ActionQueueIO Action = "queue-io"
	// ActionIORun marks one IO tick that left the burst unfinished.
	ActionIORun Action = "io-run"
	// ActionIOComplete marks the IO tick that finished the burst.
	ActionIOComplete Action = "io-complete"
	// ActionComplete marks the CPU tick that terminated the process.
	ActionComplete Action = "complete"
	// ActionIdle marks a tick that began with an empty CPU slot.
	ActionIdle Action = "idle"
)

// Record captures a single device action at one tick.
type Record struct {
	Tick    int64
	Device  Device
	Process string // empty for idle records
	Action  Action
	// Counter carries the action's progress value: remaining CPU burst for
	// run/queue-io records, elapsed IO ticks for io-run/io-complete records,
	// zero otherwise.
	Counter int64
}
