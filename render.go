package ballpit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders every ball as a filled circle centered on its position, in
// spawn order so later balls paint over earlier ones, then writes any queued
// screenshots.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	bounds := screen.Bounds()
	for _, b := range s.balls {
		r := b.Radius()
		if r <= 0 || !circleVisible(b.PositionX, b.PositionY, r, bounds.Dx(), bounds.Dy()) {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(b.PositionX), float32(b.PositionY), float32(r),
			b.Paint().toRGBA(), true)
	}

	s.flushScreenshots(screen)
}

// circleVisible reports whether a circle overlaps the w×h target.
func circleVisible(cx, cy, r float64, w, h int) bool {
	return cx+r >= 0 && cy+r >= 0 &&
		cx-r <= float64(w) && cy-r <= float64(h)
}
