package scrolldeck

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTrackerAdvance(t *testing.T) {
	tests := []struct {
		name         string
		sections     int
		sensitivity  float64
		deltas       []float64
		wantSection  int
		wantProgress float64
		wantTotal    float64
		wantDir      Direction
	}{
		{"initial", 3, 1, nil, 0, 0, 0, Forward},
		{"half section", 3, 1, []float64{0.5}, 0, 0.5, 0.5 / 3, Forward},
		{"into second", 3, 1, []float64{1.25}, 1, 0.25, 1.25 / 3, Forward},
		{"sensitivity scales", 3, 2, []float64{0.5}, 1, 0, 1.0 / 3, Forward},
		{"backward direction", 3, 1, []float64{1.5, -0.25}, 1, 0.25, 1.25 / 3, Backward},
		{"clamped at zero", 3, 1, []float64{0.5, -5}, 0, 0, 0, Backward},
		{"clamped at end", 3, 1, []float64{10}, 2, 1, 1, Forward},
		{"zero delta keeps direction", 3, 1, []float64{-0.5, 0}, 0, 0, 0, Backward},
		{"single section", 1, 1, []float64{0.5}, 0, 0.5, 0.5, Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.sections, tt.sensitivity)
			for _, d := range tt.deltas {
				tr.Advance(d)
			}
			st := tr.State()
			if st.Section != tt.wantSection {
				t.Errorf("Section = %d, want %d", st.Section, tt.wantSection)
			}
			if !almostEqual(st.SectionProgress, tt.wantProgress) {
				t.Errorf("SectionProgress = %v, want %v", st.SectionProgress, tt.wantProgress)
			}
			if !almostEqual(st.TotalProgress, tt.wantTotal) {
				t.Errorf("TotalProgress = %v, want %v", st.TotalProgress, tt.wantTotal)
			}
			if st.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", st.Direction, tt.wantDir)
			}
		})
	}
}

func TestTrackerEdges(t *testing.T) {
	tr := NewTracker(2, 1)

	// Backward from a mid position clamps to zero without an edge; only the
	// next backward input reports EdgeStart.
	tr.Advance(0.5)
	if e := tr.Advance(-5); e != EdgeNone {
		t.Errorf("clamping advance reported %v, want EdgeNone", e)
	}
	if e := tr.Advance(-0.1); e != EdgeStart {
		t.Errorf("backward at zero reported %v, want EdgeStart", e)
	}
	// Position stays pinned at zero.
	if tr.Position() != 0 {
		t.Errorf("Position = %v, want 0", tr.Position())
	}

	// Forward input that reaches the end reports EdgeEnd, and so does any
	// further forward input.
	if e := tr.Advance(2); e != EdgeEnd {
		t.Errorf("advance to end reported %v, want EdgeEnd", e)
	}
	if e := tr.Advance(0.1); e != EdgeEnd {
		t.Errorf("forward past end reported %v, want EdgeEnd", e)
	}
	if st := tr.State(); st.Section != 1 || st.SectionProgress != 1 || st.TotalProgress != 1 {
		t.Errorf("end state = %+v", st)
	}
}

func TestTrackerBounds(t *testing.T) {
	// Any input sequence keeps Section in [0, N-1] and TotalProgress in [0, 1].
	deltas := []float64{0.3, -2, 1.7, 4, -0.9, -8, 0.05, 12, -1}
	tr := NewTracker(4, 1.3)
	for _, d := range deltas {
		tr.Advance(d)
		st := tr.State()
		if st.Section < 0 || st.Section > 3 {
			t.Fatalf("Section %d out of range after delta %v", st.Section, d)
		}
		if st.TotalProgress < 0 || st.TotalProgress > 1 {
			t.Fatalf("TotalProgress %v out of range after delta %v", st.TotalProgress, d)
		}
	}
}

func TestTrackerMonotonic(t *testing.T) {
	tr := NewTracker(3, 0.8)
	prev := tr.State().TotalProgress
	for i := 0; i < 50; i++ {
		tr.Advance(0.1)
		cur := tr.State().TotalProgress
		if cur < prev {
			t.Fatalf("forward input decreased TotalProgress: %v -> %v", prev, cur)
		}
		prev = cur
	}
	for i := 0; i < 80; i++ {
		tr.Advance(-0.1)
		cur := tr.State().TotalProgress
		if cur > prev {
			t.Fatalf("backward input increased TotalProgress: %v -> %v", prev, cur)
		}
		prev = cur
	}
	if got := tr.State().TotalProgress; got != 0 {
		t.Errorf("TotalProgress = %v after draining backward, want 0", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(3, 1)
	tr.Advance(2.4)
	tr.Advance(-0.2)
	tr.Reset()
	st := tr.State()
	if st.Section != 0 || st.SectionProgress != 0 || st.TotalProgress != 0 {
		t.Errorf("state after Reset = %+v, want zeros", st)
	}
	if st.Direction != Forward {
		t.Errorf("Direction after Reset = %v, want Forward", st.Direction)
	}
}

func TestTrackerBadSensitivity(t *testing.T) {
	tr := NewTracker(3, 0)
	tr.Advance(1)
	if tr.Position() != 1 {
		t.Errorf("zero sensitivity should fall back to 1, got position %v", tr.Position())
	}
}
