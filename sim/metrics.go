// Tracks run-wide performance metrics derived from the completed list.

package sim

import "fmt"

// Report aggregates statistics about one finished simulation run
// for final reporting. Useful for comparing disciplines over the
// same workload.
type Report struct {
	Discipline Discipline
	Processes  []*Process // completed processes, in completion order

	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
	IdleTicks         int64
	TotalTicks        int64
	CPUUtilization    float64 // percent of ticks the CPU was busy
	Throughput        float64 // completed processes per tick
}

// ComputeReport derives the aggregate metrics from a completed list. It is a
// pure function of its inputs. The completed list must be non-empty and the
// tick count positive: every aggregate below divides by one or the other.
func ComputeReport(discipline Discipline, completed []*Process, totalTicks, idleTicks int64) (*Report, error) {
	if len(completed) == 0 {
		return nil, fmt.Errorf("cannot report on a run with no completed processes")
	}
	if totalTicks <= 0 {
		return nil, fmt.Errorf("cannot report on a run of %d ticks", totalTicks)
	}

	var waiting, turnaround, response int64
	for _, p := range completed {
		waiting += p.WaitingTime()
		turnaround += p.TurnaroundTime()
		response += p.ResponseTime()
	}

	n := float64(len(completed))
	return &Report{
		Discipline:        discipline,
		Processes:         completed,
		AvgWaitingTime:    float64(waiting) / n,
		AvgTurnaroundTime: float64(turnaround) / n,
		AvgResponseTime:   float64(response) / n,
		IdleTicks:         idleTicks,
		TotalTicks:        totalTicks,
		CPUUtilization:    float64(totalTicks-idleTicks) / float64(totalTicks) * 100,
		Throughput:        n / float64(totalTicks),
	}, nil
}

// Print displays the per-process rows and the aggregated metrics at the
// end of a run.
func (r *Report) Print() {
	fmt.Printf("=== Simulation Metrics (%s) ===\n", r.Discipline)
	for _, p := range r.Processes {
		fmt.Printf("%s\n", p.Name)
		fmt.Printf("\tArrival Time    : %d\n", p.ArrivalTime)
		fmt.Printf("\tStart Time      : %d\n", p.StartTime)
		fmt.Printf("\tResponse Time   : %d\n", p.ResponseTime())
		fmt.Printf("\tCompletion Time : %d\n", p.CompletionTime)
		fmt.Printf("\tTurnaround Time : %d\n", p.TurnaroundTime())
		fmt.Printf("\tWaiting Time    : %d\n", p.WaitingTime())
	}
	fmt.Printf("Avg Waiting Time    : %.2f ticks\n", r.AvgWaitingTime)
	fmt.Printf("Avg Turnaround Time : %.2f ticks\n", r.AvgTurnaroundTime)
	fmt.Printf("Avg Response Time   : %.2f ticks\n", r.AvgResponseTime)
	fmt.Printf("Ticks CPU Idle      : %d\n", r.IdleTicks)
	fmt.Printf("Total Ticks CPU     : %d\n", r.TotalTicks)
	fmt.Printf("Total CPU Usage     : %.2f %%\n", r.CPUUtilization)
	fmt.Printf("CPU Throughput      : %.4f\n", r.Throughput)
}
