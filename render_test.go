package scrolldeck

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLayoutSection(t *testing.T) {
	tests := []struct {
		name     string
		i        int
		pos      float64
		wantOff  float64
		wantScl  float64
		wantAlph float64
	}{
		{"hidden far ahead", 2, 0, incomingSlide, 1, 0},
		{"hidden at threshold", 1, 0, incomingSlide, 1, 0},
		{"arriving halfway", 1, 0.5, incomingSlide * 0.5, 1, 0.5},
		{"just arrived", 1, 1, 0, 1, 1},
		{"settled active", 0, 0, 0, 1, 1},
		{"receding halfway", 0, 0.5, 0, 1 + settledZoom*0.5, 1},
		{"fully covered", 0, 1, 0, 1 + settledZoom, 1},
		{"deep behind clamps zoom", 0, 2.7, 0, 1 + settledZoom, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutSection(tt.i, tt.pos)
			if !almostEqual(got.OffsetY, tt.wantOff) {
				t.Errorf("OffsetY = %v, want %v", got.OffsetY, tt.wantOff)
			}
			if !almostEqual(got.Scale, tt.wantScl) {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScl)
			}
			if !almostEqual(got.Alpha, tt.wantAlph) {
				t.Errorf("Alpha = %v, want %v", got.Alpha, tt.wantAlph)
			}
		})
	}
}

func TestLayoutAlphaContinuous(t *testing.T) {
	// Alpha must rise monotonically from 0 to 1 as a section arrives, with
	// no jump at either end of the window.
	prev := 0.0
	for pos := 0.0; pos <= 2.0; pos += 0.05 {
		a := layoutSection(1, pos).Alpha
		if a < prev-1e-9 {
			t.Fatalf("alpha decreased at pos %v: %v -> %v", pos, prev, a)
		}
		if a < 0 || a > 1 {
			t.Fatalf("alpha %v out of range at pos %v", a, pos)
		}
		prev = a
	}
}

func TestDrawSmoke(t *testing.T) {
	c, _ := mount(t, testData(3), Options{})
	screen := ebiten.NewImage(640, 480)

	// Draw across a transition; placeholder fills only, must not panic.
	c.Draw(screen)
	c.InjectScroll(1.4)
	c.Update()
	drive(c, 10)
	c.Draw(screen)

	// Static fallback draws too.
	bad := testData(2)
	bad.Sections[0].Order = 9
	s := New(bad, Options{Bounds: Rect{Width: 640, Height: 480}})
	s.Draw(screen)

	// Disposed carousels draw nothing.
	c.Dispose()
	c.Draw(screen)
}

func TestDrawStaticShowsAllSections(t *testing.T) {
	src := newFakeSource()
	bad := testData(3)
	bad.Sections[0].Order = 9
	c := New(bad, Options{Source: src, Bounds: Rect{Width: 640, Height: 120}})
	if c.Phase() != PhaseStatic {
		t.Fatalf("phase = %v, want static", c.Phase())
	}

	screen := ebiten.NewImage(640, 480)
	c.Draw(screen)

	// All three sections fit on screen; each draw requests its background.
	for _, sec := range bad.Sections {
		if !requested(c.preload, sec.Background.Ref) {
			t.Errorf("section %q not drawn in static mode", sec.ID)
		}
	}
}

func TestDrawStaticScrollsWithPage(t *testing.T) {
	src := newFakeSource()
	bad := testData(3)
	bad.Sections[0].Order = 9
	c := New(bad, Options{Source: src, Bounds: Rect{Width: 640, Height: 480}})
	screen := ebiten.NewImage(640, 480)

	// At the top of the page only the first section is on screen.
	c.Draw(screen)
	if !requested(c.preload, "image-a") {
		t.Error("visible section not drawn")
	}
	if requested(c.preload, "image-c") {
		t.Error("offscreen section drawn")
	}

	// Native scroll carries the viewport down the stacked sections.
	c.SetViewport(Rect{Y: 960, Width: 640, Height: 480})
	c.Draw(screen)
	if !requested(c.preload, "image-c") {
		t.Error("section not drawn after scrolling to it")
	}
}

func TestPlaceholderShadeStable(t *testing.T) {
	for i := 0; i < 10; i++ {
		if placeholderShade(i) != placeholderShade(i) {
			t.Fatalf("shade %d not stable", i)
		}
	}
}
