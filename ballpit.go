package ballpit

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default overlay tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromRGB unpacks a 0xRRGGBB integer into an opaque Color.
func ColorFromRGB(rgb uint32) Color {
	c := colorful.Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hex returns the color as a zero-padded "#rrggbb" string. Alpha is ignored.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EventType identifies a kind of stage event.
type EventType uint8

const (
	EventSpawn EventType = iota // fires after a ball is appended to the stage
	EventClick                  // fires on press then release over the stage
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EpochMode selects the instant a ball's elapsed time is measured from.
type EpochMode uint8

const (
	// EpochCreation measures elapsed time from the ball's creation instant on
	// every frame. Displacement per frame grows with the ball's age.
	EpochCreation EpochMode = iota
	// EpochFrame resets the ball's epoch after each update so elapsed time is
	// the delta since the previous frame.
	EpochFrame
)
