package scrolldeck

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/kylerdohmen/scrolldeck/content"
)

// DefaultCompleteDelay is the settle time between releasing the scroll lock
// and invoking OnComplete. Overridable via Options.CompleteDelay.
const DefaultCompleteDelay = 100 * time.Millisecond

// defaultMaxImageDim is the preload downscale budget when Options leaves it zero.
const defaultMaxImageDim = 2048

// Options configures a Carousel mount. The zero value is usable: no host
// scroll to suppress, no image source, no completion callback.
type Options struct {
	// Source resolves section background refs to pixels. Nil disables
	// background images (sections render with placeholder fills).
	Source ImageSource
	// Page is the host page's native scroll, suppressed while the carousel
	// is locked. Nil means there is no host side effect to manage.
	Page PageScroller
	// OnComplete is invoked exactly once per mount, after the user has
	// scrolled through all sections and the lock has been released.
	OnComplete func()
	// CompleteDelay is the settle time before OnComplete fires.
	// Zero means DefaultCompleteDelay.
	CompleteDelay time.Duration
	// MaxImageDim is the preload downscale budget. Zero means a 2048px
	// budget; negative disables downscaling.
	MaxImageDim int
	// Bounds is the carousel's rectangle in page space, used for viewport
	// intersection. Adjustable later via SetBounds.
	Bounds Rect
	// Logger receives preload warnings and state transitions at Debug.
	// Nil means no logging.
	Logger *zap.Logger
}

// Carousel is the scroll-locked hero carousel: it composes the progress
// tracker, the scroll lock controller, and the preloader, and owns the
// phase state machine described on the Phase constants.
//
// The host drives it like any Ebitengine widget: SetViewport with the
// current page viewport, Update once per tick, Draw once per frame, and
// Dispose on unmount. Dispose unconditionally releases the scroll lock.
type Carousel struct {
	data    content.Data
	tracker *Tracker
	lock    *LockController
	preload *Preloader
	input   *inputReader
	log     *zap.Logger

	phase      Phase
	disengaged bool // after a backward exit: wait to leave view before re-arming
	disposed   bool

	bounds   Rect
	viewport Rect

	onComplete    func()
	completeDelay time.Duration
	completeTimer float64 // seconds until OnComplete fires; active in PhaseComplete
	fired         bool

	// visual is the smoothed render position, eased toward the tracker's
	// raw position with gween (the tracker itself is never smoothed).
	visual float64
	tween  *gween.Tween

	injectQueue []float64
	script      *Script
}

// New mounts a carousel over the given data. Malformed data (see
// content.Data.Validate) is not fatal: the carousel mounts in PhaseStatic,
// rendering sections in supplied order with no scroll lock and no
// transitions.
func New(data content.Data, opts Options) *Carousel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	delay := opts.CompleteDelay
	if delay == 0 {
		delay = DefaultCompleteDelay
	}
	maxDim := opts.MaxImageDim
	if maxDim == 0 {
		maxDim = defaultMaxImageDim
	}

	data.Config = data.Config.Normalize()
	c := &Carousel{
		data:          data,
		tracker:       NewTracker(len(data.Sections), data.Config.ScrollSensitivity),
		lock:          NewLockController(opts.Page, log),
		preload:       NewPreloader(opts.Source, maxDim, log),
		input:         newInputReader(),
		log:           log,
		bounds:        opts.Bounds,
		onComplete:    opts.OnComplete,
		completeDelay: delay,
	}

	if err := data.Validate(); err != nil {
		log.Warn("carousel data invalid, rendering statically", zap.Error(err))
		c.phase = PhaseStatic
	}
	return c
}

// Update advances the carousel by one tick: runs the attached script (if
// any), consumes input, steps the phase machine, and eases the render
// position. Call once per Ebitengine update.
func (c *Carousel) Update() {
	if c.disposed {
		return
	}
	dt := 1.0 / float64(ebiten.TPS())

	if c.script != nil {
		c.script.step(c)
	}

	switch c.phase {
	case PhaseIdle:
		c.updateIdle()
	case PhaseLocked:
		c.updateLocked()
	case PhaseComplete:
		c.updateComplete(dt)
	case PhaseStatic:
		// Nothing to drive.
	}

	if c.phase != PhaseLocked {
		c.discardInjected()
	}
	c.advanceVisual(dt)
}

// updateIdle waits for the carousel to enter the viewport, then acquires
// the lock. After a backward exit the carousel stays disengaged until it
// has fully left the viewport, so the still-visible hero does not
// immediately re-capture the scroll the user just escaped with.
func (c *Carousel) updateIdle() {
	inView := c.bounds.Intersects(c.viewport)
	if c.disengaged {
		if !inView {
			c.disengaged = false
		}
		return
	}
	if !inView {
		return
	}
	if !c.lock.Lock() {
		// Restricted host: passthrough mode, render statically.
		c.phase = PhaseStatic
		c.log.Debug("carousel degraded to passthrough")
		return
	}
	c.tracker.Reset()
	c.visual = 0
	c.tween = nil
	c.phase = PhaseLocked
	c.preload.Warm(0, c.data.Sections)
	c.log.Debug("carousel locked", zap.Int("sections", len(c.data.Sections)))
}

// updateLocked routes one update's worth of input into the tracker and
// reacts to the edges: backward at the start releases the page upward,
// forward at the end completes the mount.
func (c *Carousel) updateLocked() {
	delta := c.consumeInput()
	if delta == 0 {
		return
	}

	before := c.tracker.State().Section
	edge := c.tracker.Advance(delta)
	after := c.tracker.State().Section
	if after > before {
		c.preload.Warm(after, c.data.Sections)
	}
	c.retarget()

	switch edge {
	case EdgeStart:
		// Cannot go back: hand scroll back to the page so the user can
		// continue upward. Re-entering the viewport later starts over.
		c.lock.Unlock()
		c.disengaged = true
		c.phase = PhaseIdle
		c.log.Debug("carousel released upward")
	case EdgeEnd:
		c.lock.Unlock()
		c.phase = PhaseComplete
		c.completeTimer = c.completeDelay.Seconds()
		c.log.Debug("carousel complete, settling",
			zap.Duration("delay", c.completeDelay))
	}
}

// updateComplete counts down the settle delay, then fires OnComplete once.
func (c *Carousel) updateComplete(dt float64) {
	if c.fired {
		return
	}
	c.completeTimer -= dt
	if c.completeTimer > 0 {
		return
	}
	c.fireComplete()
}

// fireComplete invokes the completion callback exactly once. The phase is
// already PhaseComplete, so a panicking callback cannot corrupt the state
// machine; the panic is contained and logged.
func (c *Carousel) fireComplete() {
	c.fired = true
	if c.onComplete == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("completion callback panicked", zap.Any("panic", r))
		}
	}()
	c.onComplete()
}

// retarget points the visual tween at the tracker's current position.
// Duration scales with the distance so one full section takes the
// configured transition duration.
func (c *Carousel) retarget() {
	target := c.tracker.Position()
	if target == c.visual {
		c.tween = nil
		return
	}
	dur := c.data.Config.Transition().Seconds() * math.Abs(target-c.visual)
	if dur <= 0 {
		c.visual = target
		c.tween = nil
		return
	}
	c.tween = gween.New(float32(c.visual), float32(target), float32(dur), ease.OutQuad)
}

// advanceVisual eases the render position toward the tracker.
func (c *Carousel) advanceVisual(dt float64) {
	if c.tween == nil {
		return
	}
	v, done := c.tween.Update(float32(dt))
	c.visual = float64(v)
	if done {
		c.tween = nil
	}
}

// SetViewport tells the carousel where the host viewport currently is in
// page space. Call whenever the page scrolls.
func (c *Carousel) SetViewport(v Rect) {
	c.viewport = v
}

// SetBounds moves the carousel's own rectangle in page space (e.g. after a
// window resize).
func (c *Carousel) SetBounds(b Rect) {
	c.bounds = b
}

// Bounds returns the carousel's rectangle in page space.
func (c *Carousel) Bounds() Rect {
	return c.bounds
}

// Phase returns the current orchestrator phase.
func (c *Carousel) Phase() Phase {
	return c.phase
}

// Locked reports whether the carousel currently owns page scroll.
func (c *Carousel) Locked() bool {
	return c.lock.Locked()
}

// Progress returns the tracker's current derived state, read-only.
func (c *Carousel) Progress() State {
	return c.tracker.State()
}

// Sections returns the mounted section sequence. The returned slice MUST
// NOT be mutated.
func (c *Carousel) Sections() []content.Section {
	return c.data.Sections
}

// SetScript attaches a scripted input driver, run one step per Update.
func (c *Carousel) SetScript(s *Script) {
	c.script = s
}

// Dispose unmounts the carousel: the scroll lock is released
// unconditionally and in-flight preloads are discarded. Further Update and
// Draw calls are no-ops. Safe to call more than once.
func (c *Carousel) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.lock.Unlock()
	c.preload.Close()
	c.log.Debug("carousel disposed")
}
