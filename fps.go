package ballpit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshInterval = 0.5 // seconds

// fpsOverlay shows FPS, TPS and the ball count in the top-left corner. The
// text is re-rendered into its own image every fpsRefreshInterval.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{dirty: true}
}

// update accumulates dt and marks the text stale once the interval passes.
func (o *fpsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate < fpsRefreshInterval {
		return
	}
	o.lastUpdate = 0
	o.dirty = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image, balls int) {
	if o.img == nil {
		// 100x48 fits "FPS: 60.0\nTPS: 60.0\nBalls: 99999"
		o.img = ebiten.NewImage(100, 48)
	}
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBalls: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), balls))
	}
	screen.DrawImage(o.img, nil)
}
