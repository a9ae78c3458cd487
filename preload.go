package scrolldeck

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/singleflight"

	"github.com/kylerdohmen/scrolldeck/content"
)

// ImageSource resolves a section background reference to decoded pixels.
// Implementations may read from disk, an asset bundle, or an embedded FS;
// the carousel never fetches over the network itself.
type ImageSource interface {
	Load(img content.Image) (image.Image, error)
}

// Preloader warms upcoming section backgrounds so transitions render without
// a visible load. Loads are fire-and-forget: failures are swallowed (logged
// at Warn, never retried) and never block rendering. A section whose load
// failed keeps its placeholder fill. Results land in a ready map consumed
// opportunistically at draw time.
type Preloader struct {
	source ImageSource
	log    *zap.Logger
	maxDim int

	// group collapses concurrent loads of the same ref, so at most one load
	// per image reference is ever outstanding.
	group singleflight.Group

	mu      sync.Mutex
	ready   map[string]*ebiten.Image
	warmed  map[string]bool
	pending map[string]bool
	failed  map[string]bool
	closed  bool
}

// lookahead is how many sections past the active one are warmed.
const lookahead = 2

// NewPreloader creates a preloader over the given source. Decoded images
// larger than maxDim on either axis are downscaled before texture upload;
// maxDim <= 0 disables scaling. A nil source disables preloading entirely
// (Image always misses).
func NewPreloader(source ImageSource, maxDim int, log *zap.Logger) *Preloader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Preloader{
		source:  source,
		log:     log,
		maxDim:  maxDim,
		ready:   make(map[string]*ebiten.Image),
		warmed:  make(map[string]bool),
		pending: make(map[string]bool),
		failed:  make(map[string]bool),
	}
}

// Warm issues best-effort preloads for the backgrounds of the sections after
// current (up to lookahead ahead). Indices past the end of the sequence are
// ignored. Each ref is warmed at most once per mount.
func (p *Preloader) Warm(current int, sections []content.Section) {
	if p.source == nil {
		return
	}
	for i := current + 1; i <= current+lookahead && i < len(sections); i++ {
		img := sections[i].Background
		if img.Ref == "" {
			continue
		}
		p.mu.Lock()
		skip := p.closed || p.warmed[img.Ref]
		if !skip {
			p.warmed[img.Ref] = true
		}
		p.mu.Unlock()
		if !skip {
			p.request(img)
		}
	}
}

// Image returns the preloaded texture for the given background, if ready.
// On a miss it kicks off an on-demand load (deduplicated against any
// in-flight preload of the same ref; failed refs are never retried) and
// returns false; the caller renders a placeholder until the texture lands.
func (p *Preloader) Image(img content.Image) (*ebiten.Image, bool) {
	if p.source == nil || img.Ref == "" {
		return nil, false
	}
	p.mu.Lock()
	tex, ok := p.ready[img.Ref]
	closed := p.closed
	p.mu.Unlock()
	if ok {
		return tex, true
	}
	if !closed {
		p.request(img)
	}
	return nil, false
}

// request starts a detached load of img unless one is already in flight,
// the result has landed, or a previous load of the ref failed. There is no
// retry: a broken ref is attempted once per mount and its section keeps the
// placeholder. Concurrent requests for the same ref join the same flight;
// the result is stored unless the preloader was closed while the load was
// in flight.
func (p *Preloader) request(img content.Image) {
	p.mu.Lock()
	if p.closed || p.pending[img.Ref] || p.failed[img.Ref] || p.ready[img.Ref] != nil {
		p.mu.Unlock()
		return
	}
	p.pending[img.Ref] = true
	p.mu.Unlock()

	go func() {
		v, err, _ := p.group.Do(img.Ref, func() (any, error) {
			return p.load(img)
		})
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.pending, img.Ref)
		if p.closed {
			// Unmounted mid-flight: discard the result.
			return
		}
		if err != nil {
			p.failed[img.Ref] = true
			p.log.Warn("background preload failed",
				zap.String("ref", img.Ref), zap.Error(err))
			return
		}
		p.ready[img.Ref] = v.(*ebiten.Image)
	}()
}

// load decodes, optionally downscales, and uploads one image.
func (p *Preloader) load(img content.Image) (*ebiten.Image, error) {
	src, err := p.source.Load(img)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", img.Ref, err)
	}
	if src == nil {
		return nil, fmt.Errorf("load %q: source returned no image", img.Ref)
	}
	src = downscale(src, p.maxDim)
	return ebiten.NewImageFromImage(src), nil
}

// downscale fits src within maxDim on both axes, preserving aspect ratio.
// Returns src unchanged when it already fits or maxDim <= 0.
func downscale(src image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// Close discards the ready map and causes any in-flight load to drop its
// result on landing. No state is written after Close returns. Safe to call
// more than once.
func (p *Preloader) Close() {
	p.mu.Lock()
	p.closed = true
	p.ready = make(map[string]*ebiten.Image)
	p.mu.Unlock()
}
