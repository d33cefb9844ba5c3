package ballpit

import "time"

const (
	// fallTerm is subtracted per elapsed second from the vertical step.
	fallTerm = 0.5 * 0.1
	// edgeDecay is the fraction of velocity lost on an exact edge hit.
	edgeDecay = 0.1
)

// checkBounds advances one ball to now. Inside the viewport a ball moves
// toward the far edges; outside it the step is subtracted instead. Nothing
// clamps, so a ball can overshoot and keep flipping direction without ever
// re-entering the viewport.
func (s *Stage) checkBounds(b *Ball, now time.Time) {
	elapsed := now.Sub(b.Time).Seconds()
	stepX := b.Velocity * elapsed
	stepY := b.Velocity*elapsed - fallTerm*elapsed

	if b.PositionX <= s.width && b.PositionX >= 0 {
		b.PositionX += stepX
	} else {
		b.PositionX -= stepX
	}

	if b.PositionY <= s.height && b.PositionY >= 0 {
		b.PositionY += stepY
	} else {
		b.PositionY -= stepY
	}

	// Exact equality: only a ball landing precisely on the far edge decays.
	if b.PositionY == s.height || b.PositionX == s.width {
		b.Velocity -= b.Velocity * edgeDecay
	}

	if s.epoch == EpochFrame {
		b.Time = now
	}
}

// Tick advances every ball to now, in spawn order, and steps the spawn
// pop-in tweens by the time since the previous tick. Balls appended while
// callbacks run during a tick are first moved on the next one.
func (s *Stage) Tick(now time.Time) {
	for _, b := range s.balls {
		s.checkBounds(b, now)
	}

	var dt float64
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
	s.updateTweens(float32(dt))
}
