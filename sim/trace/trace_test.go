package trace

import "testing"

func TestAppend_CollectsAtFullLevel(t *testing.T) {
	tr := New(LevelFull)
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P1", Action: ActionArrive})
	tr.Append(Record{Tick: 1, Device: DeviceCPU, Process: "P1", Action: ActionRun, Counter: 4})

	if len(tr.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(tr.Records))
	}
	if tr.Records[1].Counter != 4 {
		t.Errorf("counter: got %d, want 4", tr.Records[1].Counter)
	}
}

func TestAppend_NoneLevelDropsRecords(t *testing.T) {
	tr := New(LevelNone)
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P1", Action: ActionRun})

	if len(tr.Records) != 0 {
		t.Errorf("expected 0 records at level none, got %d", len(tr.Records))
	}
}

func TestAppend_NilTraceIsSafe(t *testing.T) {
	var tr *Trace
	// must not panic
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Action: ActionIdle})
}

func TestNew_EmptyLevelDefaultsToFull(t *testing.T) {
	tr := New("")
	if tr.Level != LevelFull {
		t.Errorf("level: got %q, want %q", tr.Level, LevelFull)
	}
}

func TestForProcess_FiltersInOrder(t *testing.T) {
	tr := New(LevelFull)
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P1", Action: ActionArrive})
	tr.Append(Record{Tick: 0, Device: DeviceCPU, Process: "P2", Action: ActionArrive})
	tr.Append(Record{Tick: 1, Device: DeviceCPU, Process: "P1", Action: ActionRun})

	got := tr.ForProcess("P1")
	if len(got) != 2 {
		t.Fatalf("expected 2 records for P1, got %d", len(got))
	}
	if got[0].Action != ActionArrive || got[1].Action != ActionRun {
		t.Errorf("unexpected actions %v, %v", got[0].Action, got[1].Action)
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"none", "full", ""} {
		if !IsValidLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
	if IsValidLevel("decisions") {
		t.Error("expected unrecognized level to be invalid")
	}
}
