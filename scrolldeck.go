package scrolldeck

// Rect is an axis-aligned rectangle in page space. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Direction is the sign of the most recent scroll input.
type Direction int8

const (
	// Forward is down-page input: deeper into the section sequence.
	Forward Direction = 1
	// Backward is up-page input: toward the start of the sequence.
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Edge reports boundary conditions from Tracker.Advance.
type Edge uint8

const (
	// EdgeNone: input was absorbed inside the scroll range.
	EdgeNone Edge = iota
	// EdgeStart: backward input arrived with progress already at zero.
	// The carousel cannot go back; the host page should scroll instead.
	EdgeStart
	// EdgeEnd: forward input drove progress to the end of the last section.
	EdgeEnd
)

// Phase is the orchestrator state. See Carousel for the transition rules.
type Phase uint8

const (
	// PhaseIdle: mounted but not scrolled into view; no scroll lock held.
	PhaseIdle Phase = iota
	// PhaseLocked: the carousel owns page scroll and routes input to the tracker.
	PhaseLocked
	// PhaseComplete: terminal for this mount; lock released, completion fired.
	PhaseComplete
	// PhaseStatic: malformed data or restricted host; sections stack down
	// the page in supplied order with no lock and no transitions.
	PhaseStatic
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLocked:
		return "locked"
	case PhaseComplete:
		return "complete"
	case PhaseStatic:
		return "static"
	}
	return "unknown"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
