package scrolldeck

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay draws a small FPS + carousel state readout on top of the
// screen, for demos and manual testing. Refreshed every ~0.25 seconds.
type DebugOverlay struct {
	carousel *Carousel
	img      *ebiten.Image
	elapsed  float64
}

// NewDebugOverlay creates an overlay bound to the given carousel.
func NewDebugOverlay(c *Carousel) *DebugOverlay {
	// 220x64 fits four short lines of debug text.
	return &DebugOverlay{
		carousel: c,
		img:      ebiten.NewImage(220, 64),
	}
}

// Update refreshes the readout. Call once per tick.
func (o *DebugOverlay) Update() {
	o.elapsed += 1.0 / float64(ebiten.TPS())
	if o.elapsed < 0.25 {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	// Semi-transparent background for readability.
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	st := o.carousel.Progress()
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nphase: %s  locked: %v\nsection: %d  %.0f%%\ntotal: %.0f%%  dir: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		o.carousel.Phase(), o.carousel.Locked(),
		st.Section, st.SectionProgress*100,
		st.TotalProgress*100, st.Direction))
}

// Draw blits the readout at the top-left corner.
func (o *DebugOverlay) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(o.img, op)
}
