package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	// GIVEN no trace at all
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.TotalRecords != 0 || summary.CPUDispatches != 0 || summary.Completions != 0 {
		t.Errorf("expected zero-value summary, got %+v", summary)
	}
	if len(summary.ActionCounts) != 0 {
		t.Error("expected empty action counts")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with mixed device actions
	tr := New(LevelFull)
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Action: ActionIdle})
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P1", Action: ActionArrive})
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P1", Action: ActionSchedule})
	tr.Append(Record{Tick: 1, Device: DeviceCPU, Process: "P1", Action: ActionQueueIO, Counter: 2})
	tr.Append(Record{Tick: 1, Device: DeviceIO, Process: "P1", Action: ActionSchedule})
	tr.Append(Record{Tick: 2, Device: DeviceIO, Process: "P1", Action: ActionIOComplete, Counter: 1})
	tr.Append(Record{Tick: 2, Device: DeviceCPU, Process: "P1", Action: ActionSchedule})
	tr.Append(Record{Tick: 3, Device: DeviceCPU, Process: "P1", Action: ActionComplete})

	// WHEN summarized
	summary := Summarize(tr)

	// THEN counts match per category
	if summary.TotalRecords != 8 {
		t.Errorf("total records: got %d, want 8", summary.TotalRecords)
	}
	if summary.CPUDispatches != 2 {
		t.Errorf("CPU dispatches: got %d, want 2", summary.CPUDispatches)
	}
	if summary.IODispatches != 1 {
		t.Errorf("IO dispatches: got %d, want 1", summary.IODispatches)
	}
	if summary.Completions != 1 {
		t.Errorf("completions: got %d, want 1", summary.Completions)
	}
	if summary.IdleRecords != 1 {
		t.Errorf("idle records: got %d, want 1", summary.IdleRecords)
	}
	if summary.UniqueNames != 1 {
		t.Errorf("unique names: got %d, want 1", summary.UniqueNames)
	}
	if summary.ActionCounts[ActionSchedule] != 3 {
		t.Errorf("sched count: got %d, want 3", summary.ActionCounts[ActionSchedule])
	}
}
