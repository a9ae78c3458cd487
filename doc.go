// Package scrolldeck is a scroll-locked hero carousel engine for [Ebitengine].
//
// Scrolldeck captures the page's scroll input (wheel, touch drag, arrow and
// page keys) while its carousel is in view and reinterprets it as navigation
// through an ordered sequence of full-bleed sections, with tweened
// transitions and best-effort background preloading. When the user has
// scrolled through every section, the scroll lock is released and a
// completion callback fires exactly once.
//
// # Quick start
//
// Load section data (see the content package) and mount a [Carousel]:
//
//	data, err := content.Load("sections.yaml")
//	if err != nil {
//		data = content.Sample()
//	}
//	carousel := scrolldeck.New(data, scrolldeck.Options{
//		Source:     assets,                     // an ImageSource
//		Page:       page,                       // the host's PageScroller
//		Bounds:     scrolldeck.Rect{Width: 1280, Height: 720},
//		OnComplete: func() { page.ScrollPast() },
//	})
//
// Then drive it from the Ebitengine game loop:
//
//	func (g *Game) Update() error {
//		g.carousel.SetViewport(g.page.Viewport())
//		g.carousel.Update()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.carousel.Draw(screen)
//	}
//
// Call [Carousel.Dispose] on unmount; it releases the scroll lock
// unconditionally and discards in-flight preloads.
//
// # State machine
//
// A mount moves through [PhaseIdle] -> [PhaseLocked] -> [PhaseComplete].
// Backward input at the very start releases the lock and returns to
// PhaseIdle so the page can scroll upward; re-entering the viewport starts
// the sequence over. Section data that fails validation mounts in
// [PhaseStatic]: sections stacked down the page in supplied order, no lock,
// no transitions.
//
// # Testing
//
// Synthetic input ([Carousel.InjectWheel], [Carousel.InjectSwipe],
// [Carousel.InjectKeyStep]) and JSON input scripts ([LoadScript]) drive the
// carousel deterministically without a window or real devices.
//
// [Ebitengine]: https://ebitengine.org
package scrolldeck
