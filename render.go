package scrolldeck

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Section transition shape: an arriving section fades in while sliding up
// from incomingSlide of the carousel height; settled sections zoom slightly
// as the next one covers them.
const (
	incomingSlide = 0.12
	settledZoom   = 0.05
)

// sectionLayout is the draw transform for one section at a render position.
// OffsetY is a fraction of the carousel height.
type sectionLayout struct {
	OffsetY float64
	Scale   float64
	Alpha   float64
}

// layoutSection derives section i's transform purely from the render
// position. Sections stack with ascending depth: draw order 0..N-1 puts
// later sections in front, so the transition reads as a forward march.
func layoutSection(i int, pos float64) sectionLayout {
	rel := pos - float64(i)
	switch {
	case rel <= -1:
		// Not yet arriving.
		return sectionLayout{OffsetY: incomingSlide, Scale: 1, Alpha: 0}
	case rel < 0:
		// Arriving: rel goes -1 -> 0 as the section fades in and rises.
		t := rel + 1
		return sectionLayout{OffsetY: incomingSlide * (1 - t), Scale: 1, Alpha: t}
	default:
		depth := min(rel, 1)
		return sectionLayout{OffsetY: 0, Scale: 1 + settledZoom*depth, Alpha: 1}
	}
}

// whitePixel is a 1x1 white image used for placeholder fills while a
// section background is still loading.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Draw renders the visible sections into screen at the carousel's current
// screen position (bounds offset by the viewport origin). In PhaseStatic
// the sections are stacked down the page in supplied order with no
// transition logic; native scroll moves the whole block through the
// viewport.
func (c *Carousel) Draw(screen *ebiten.Image) {
	if c.disposed || len(c.data.Sections) == 0 {
		return
	}
	x := c.bounds.X - c.viewport.X
	y := c.bounds.Y - c.viewport.Y
	if c.phase == PhaseStatic {
		c.drawStatic(screen, x, y)
		return
	}
	for i := range c.data.Sections {
		lay := layoutSection(i, c.visual)
		if lay.Alpha <= 0 {
			continue
		}
		c.drawSection(screen, i, x, y, lay)
	}
}

// drawStatic draws every section full-alpha, one carousel height apart, so
// the degraded modes still show all content. Sections fully outside the
// screen are skipped.
func (c *Carousel) drawStatic(screen *ebiten.Image, x, y float64) {
	h := c.bounds.Height
	sh := float64(screen.Bounds().Dy())
	for i := range c.data.Sections {
		top := y + float64(i)*h
		if top >= sh || top+h <= 0 {
			continue
		}
		c.drawSection(screen, i, x, top, sectionLayout{Scale: 1, Alpha: 1})
	}
}

func (c *Carousel) drawSection(screen *ebiten.Image, i int, x, y float64, lay sectionLayout) {
	sec := c.data.Sections[i]
	w, h := c.bounds.Width, c.bounds.Height
	offY := lay.OffsetY * h

	if tex, ok := c.preload.Image(sec.Background); ok {
		tw := float64(tex.Bounds().Dx())
		th := float64(tex.Bounds().Dy())
		// Cover-fit the bounds, then apply the layout zoom about the center.
		scale := max(w/tw, h/th) * lay.Scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+(w-tw*scale)/2, y+offY+(h-th*scale)/2)
		op.ColorScale.ScaleAlpha(float32(lay.Alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(tex, op)
	} else {
		// Background not ready (or no source): deterministic shade per
		// section so transitions stay legible.
		sw := w * lay.Scale
		sh := h * lay.Scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sw, sh)
		op.GeoM.Translate(x+(w-sw)/2, y+offY+(h-sh)/2)
		shade := placeholderShade(i)
		op.ColorScale.Scale(shade[0], shade[1], shade[2], 1)
		op.ColorScale.ScaleAlpha(float32(lay.Alpha))
		screen.DrawImage(whitePixel, op)
	}

	// Headings are demo-grade debug text; avoid popping them in mid-fade.
	if lay.Alpha >= 0.5 && sec.Heading != "" {
		ebitenutil.DebugPrintAt(screen, sec.Heading, int(x)+24, int(y+offY)+24)
		if sec.Subheading != "" {
			ebitenutil.DebugPrintAt(screen, sec.Subheading, int(x)+24, int(y+offY)+44)
		}
	}
}

// placeholderShade returns a stable RGB fill for section i.
func placeholderShade(i int) [3]float32 {
	shades := [...][3]float32{
		{0.13, 0.16, 0.22},
		{0.18, 0.13, 0.20},
		{0.12, 0.20, 0.18},
		{0.22, 0.18, 0.12},
	}
	return shades[i%len(shades)]
}
