package scrolldeck

import "go.uber.org/zap"

// PageScroller is the host page's native scroll, as seen by the carousel.
// Suppress disables native scrolling so wheel/touch/key input can be
// reinterpreted as carousel navigation; Restore re-enables it. Suppress may
// fail in restricted hosts, in which case the carousel degrades to an
// unlocked passthrough render.
type PageScroller interface {
	Suppress() error
	Restore()
}

// LockController owns the page scroll lock. It is the only component that
// touches the host's scroll behavior; everyone else observes Locked()
// read-only. Lock and Unlock are idempotent.
type LockController struct {
	page   PageScroller
	locked bool
	log    *zap.Logger
}

// NewLockController wraps the host's page scroll. A nil page is allowed: the
// lock then only tracks routing state, with no host side effect (used by the
// static fallback and by tests).
func NewLockController(page PageScroller, log *zap.Logger) *LockController {
	if log == nil {
		log = zap.NewNop()
	}
	return &LockController{page: page, log: log}
}

// Lock suppresses native page scrolling and starts routing input to the
// carousel. A no-op when already locked. Returns false when the host refused
// suppression; the caller should fall back to passthrough mode.
func (l *LockController) Lock() bool {
	if l.locked {
		return true
	}
	if l.page != nil {
		if err := l.page.Suppress(); err != nil {
			l.log.Warn("scroll lock refused", zap.Error(err))
			return false
		}
	}
	l.locked = true
	l.log.Debug("scroll locked")
	return true
}

// Unlock restores native page scrolling and stops routing input to the
// carousel. A no-op when already unlocked.
func (l *LockController) Unlock() {
	if !l.locked {
		return
	}
	l.locked = false
	if l.page != nil {
		l.page.Restore()
	}
	l.log.Debug("scroll unlocked")
}

// Locked reports whether the carousel currently owns page scroll.
func (l *LockController) Locked() bool {
	return l.locked
}
