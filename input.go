package scrolldeck

import "github.com/hajimehoshi/ebiten/v2"

// Device-unit to section-unit conversion. Config.ScrollSensitivity
// multiplies on top of these inside the Tracker.
const (
	wheelNotchDelta = 0.08  // sections per wheel notch
	keyStepDelta    = 0.25  // sections per arrow/page key press
	dragFullSection = 400.0 // vertical drag pixels for one full section

	maxTouchSlots = 10
)

var (
	forwardKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyPageDown, ebiten.KeySpace}
	backwardKeys = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyPageUp}
)

// inputReader polls Ebitengine once per update and reduces wheel, touch-drag,
// and key input to a single signed section-unit delta. Positive is forward
// (down-page). Only consulted while the carousel holds the scroll lock.
type inputReader struct {
	prevPressed map[ebiten.Key]bool

	touchMap  [maxTouchSlots]ebiten.TouchID
	touchUsed [maxTouchSlots]bool
	lastY     [maxTouchSlots]float64
	touchIDs  []ebiten.TouchID
}

func newInputReader() *inputReader {
	return &inputReader{prevPressed: make(map[ebiten.Key]bool)}
}

// readDelta polls all devices and returns the summed delta for this update.
func (r *inputReader) readDelta() float64 {
	var delta float64

	// Wheel: Ebitengine reports positive Y for up-scroll, so down-scroll
	// (forward) is the negative direction.
	_, wheelY := ebiten.Wheel()
	delta -= wheelY * wheelNotchDelta

	// Keys are edge-triggered: one step per press.
	for _, k := range forwardKeys {
		if r.justPressed(k) {
			delta += keyStepDelta
		}
	}
	for _, k := range backwardKeys {
		if r.justPressed(k) {
			delta -= keyStepDelta
		}
	}

	delta += r.readTouchDelta()
	return delta
}

func (r *inputReader) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	was := r.prevPressed[k]
	r.prevPressed[k] = pressed
	return pressed && !was
}

// readTouchDelta accumulates vertical drag across active touches. Dragging
// up (content follows the finger) moves forward through the sections.
func (r *inputReader) readTouchDelta() float64 {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])

	var delta float64
	var active [maxTouchSlots]bool
	for _, tid := range r.touchIDs {
		slot, fresh := r.slot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		_, ty := ebiten.TouchPosition(tid)
		y := float64(ty)
		if !fresh {
			delta += (r.lastY[slot] - y) / dragFullSection
		}
		r.lastY[slot] = y
	}

	// Release slots whose touch ended this update.
	for i := 0; i < maxTouchSlots; i++ {
		if r.touchUsed[i] && !active[i] {
			r.touchUsed[i] = false
			r.touchMap[i] = 0
		}
	}
	return delta
}

// slot maps an ebiten.TouchID to a stable slot index, allocating one for new
// touches. fresh is true on the allocating call, whose position only seeds
// lastY. Returns -1 when all slots are taken.
func (r *inputReader) slot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 0; i < maxTouchSlots; i++ {
		if r.touchUsed[i] && r.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 0; i < maxTouchSlots; i++ {
		if !r.touchUsed[i] {
			r.touchUsed[i] = true
			r.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
