package trace

// Summary aggregates statistics from a Trace.
type Summary struct {
	TotalRecords  int
	CPUDispatches int // sched records on the CPU device
	IODispatches  int // sched records on the IO device
	Completions   int
	IdleRecords   int
	UniqueNames   int
	ActionCounts  map[Action]int
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{
		ActionCounts: make(map[Action]int),
	}
	if t == nil {
		return summary
	}

	summary.TotalRecords = len(t.Records)
	names := make(map[string]bool)
	for _, r := range t.Records {
		summary.ActionCounts[r.Action]++
		if r.Process != "" {
			names[r.Process] = true
		}
		switch r.Action {
		case ActionSchedule:
			if r.Device == DeviceCPU {
				summary.CPUDispatches++
			} else {
				summary.IODispatches++
			}
		case ActionComplete:
			summary.Completions++
		case ActionIdle:
			summary.IdleRecords++
		}
	}
	summary.UniqueNames = len(names)

	return summary
}
