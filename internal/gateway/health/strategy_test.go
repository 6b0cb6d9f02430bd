package health

import "testing"

func TestSlidingStrategy(t *testing.T) {
	s := &SlidingStrategy{StepUp: 2, StepDown: 10}

	rate := s.Update(100, true)
	if rate != 100 {
		t.Errorf("rate capped above 100: %v", rate)
	}
	rate = s.Update(100, false)
	if rate != 90 {
		t.Errorf("rate after one failure = %v, want 90", rate)
	}
	rate = s.Update(5, false)
	if rate != 0 {
		t.Errorf("rate floor broken: %v", rate)
	}
}

func TestEWMAStrategy(t *testing.T) {
	e := &EWMAStrategy{Alpha: 0.1}

	rate := e.Update(100, false)
	if rate != 90 {
		t.Errorf("rate = %v, want 90", rate)
	}
	rate = e.Update(90, true)
	if rate != 91 {
		t.Errorf("rate = %v, want 91", rate)
	}
}

func TestTrackerSnapshot(t *testing.T) {
	tr := NewTracker(&SlidingStrategy{StepUp: 2, StepDown: 10})
	tr.Record(false, "timeout")

	snap := tr.Snapshot()
	if snap.SuccessRate != 90 {
		t.Errorf("success rate = %v, want 90", snap.SuccessRate)
	}
	if snap.LastError != "timeout" {
		t.Errorf("last error = %q", snap.LastError)
	}

	tr.Record(true, "")
	if snap := tr.Snapshot(); snap.LastError != "" {
		t.Error("last error not cleared after success")
	}
}
