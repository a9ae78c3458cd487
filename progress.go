package scrolldeck

import "math"

// State is the derived scroll position, recomputed on every input event.
// It is owned by the Tracker and read-only everywhere else.
type State struct {
	// Section is the index of the active section, always in [0, N-1].
	Section int
	// SectionProgress is the position within the active section, in [0, 1].
	// It reaches exactly 1 only at the end of the last section.
	SectionProgress float64
	// TotalProgress is the position across the whole sequence, in [0, 1].
	TotalProgress float64
	// Direction is the sign of the most recent non-zero delta.
	Direction Direction
}

// Tracker converts raw signed input deltas into a normalized position within
// the carousel's virtual scroll range. Deltas are in section units (1.0 = one
// full section) and are multiplied by the configured scroll sensitivity
// before accumulating into a scalar clamped to [0, N].
type Tracker struct {
	sections    int
	sensitivity float64
	pos         float64
	dir         Direction
}

// NewTracker creates a tracker over the given number of sections.
// A non-positive sensitivity falls back to 1.
func NewTracker(sections int, sensitivity float64) *Tracker {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return &Tracker{
		sections:    sections,
		sensitivity: sensitivity,
		dir:         Forward,
	}
}

// Advance accumulates one input delta and reports the resulting edge
// condition. EdgeStart means the position was already at zero and the input
// was backward; EdgeEnd means forward input reached (or was already at) the
// end of the last section. Zero delta is a no-op and never reports an edge.
func (t *Tracker) Advance(delta float64) Edge {
	if delta == 0 || t.sections == 0 {
		return EdgeNone
	}
	if delta > 0 {
		t.dir = Forward
	} else {
		t.dir = Backward
	}

	prev := t.pos
	t.pos = clamp(t.pos+delta*t.sensitivity, 0, float64(t.sections))

	if delta < 0 && prev == 0 {
		return EdgeStart
	}
	if delta > 0 && t.pos == float64(t.sections) {
		return EdgeEnd
	}
	return EdgeNone
}

// State derives the current progress values from the accumulated position.
func (t *Tracker) State() State {
	if t.sections == 0 {
		return State{Direction: t.dir}
	}
	section := int(math.Floor(t.pos))
	if section > t.sections-1 {
		section = t.sections - 1
	}
	return State{
		Section:         section,
		SectionProgress: t.pos - float64(section),
		TotalProgress:   t.pos / float64(t.sections),
		Direction:       t.dir,
	}
}

// Position returns the raw accumulated position in [0, N]. The renderer
// smooths toward this value; everything else should use State.
func (t *Tracker) Position() float64 {
	return t.pos
}

// Reset returns the tracker to its initial state. Used when the carousel
// re-enters the viewport after a backward exit.
func (t *Tracker) Reset() {
	t.pos = 0
	t.dir = Forward
}
