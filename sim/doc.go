// Package sim provides the core discrete-time simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (ready → running → blocked/terminated) and state machine
//   - queue.go: Ready-queue ordering policies (FIFO, shortest total burst, shortest remaining burst)
//   - device.go: The Device engine — CPU slot, IO slot, tick phases, and the run loop
//
// # Architecture
//
// A workload file is parsed into immutable ProcessSpec values (workload.go).
// Each (workload, discipline) run materializes fresh Process records into a
// new Device, so repeated runs never share mutable state. The Device advances
// one tick at a time through a fixed phase order: arrival intake, CPU step,
// IO step, scheduling decision, idle bookkeeping. Completed processes are
// aggregated into a Report (metrics.go). Tick-by-tick records are collected
// into sim/trace and rendered by the cmd layer.
package sim
