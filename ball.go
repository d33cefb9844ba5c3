package ballpit

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	initialVelocity = 5.0
	minBallSize     = 50
	maxBallSize     = 100 // exclusive
	maxColorValue   = 0xffffff
)

// Ball is a single animated stage entity. Balls have no identity beyond their
// index in the stage and are never removed.
type Ball struct {
	// Color is "#" followed by the hex encoding of RGB. Not zero padded unless
	// the stage was created with PadColors.
	Color string
	RGB   uint32

	// Size is the diameter in pixels. It never affects motion.
	Size int

	PositionX float64
	PositionY float64
	Velocity  float64

	// Time is the epoch elapsed time is measured from. With EpochCreation it
	// is the creation instant and is never updated.
	Time time.Time

	// Scale is the spawn pop-in factor in [0, 1]. Visual only.
	Scale float64
}

// Paint returns the ball's fill color.
func (b *Ball) Paint() Color {
	return ColorFromRGB(b.RGB)
}

// Radius returns the on-screen radius including the spawn pop-in scale.
func (b *Ball) Radius() float64 {
	return float64(b.Size) / 2 * b.Scale
}

// generateColor draws a uniform integer in [0, 0xffffff) and formats it as a
// hex color. Without pad, short codes such as "#a3" are possible.
func generateColor(r *rand.Rand, pad bool) (string, uint32) {
	n := r.Uint32N(maxColorValue)
	if pad {
		return ColorFromRGB(n).Hex(), n
	}
	return "#" + strconv.FormatUint(uint64(n), 16), n
}

// generateSize draws a uniform integer in [50, 100).
func generateSize(r *rand.Rand) int {
	return minBallSize + r.IntN(maxBallSize-minBallSize)
}
