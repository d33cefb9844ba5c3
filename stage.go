package ballpit

import (
	"math/rand/v2"
	"time"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, spawn and click events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event StageEvent)
}

// StageEvent carries stage event data for the ECS bridge.
type StageEvent struct {
	Type   EventType
	Index  int // index of the spawned ball (EventSpawn only)
	X      float64
	Y      float64
	Color  string
	Size   int
	Button MouseButton // valid for EventClick
}

// PointerEvent is a pointer event in stage coordinates.
type PointerEvent struct {
	X, Y   float64
	Button MouseButton
}

// StageConfig holds the construction options for a Stage. The zero value is
// a 0×0 viewport with a clock-seeded random source.
type StageConfig struct {
	// Width and Height are the viewport extents used as bounce boundaries.
	// They are read once; later window resizes are not observed.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Epoch selects how elapsed time is measured. Defaults to EpochCreation.
	Epoch EpochMode `yaml:"epoch"`

	// PadColors zero-pads generated colors to six hex digits.
	PadColors bool `yaml:"padColors"`

	// Rand is the source for colors and sizes. Defaults to a PCG seeded from
	// the clock.
	Rand *rand.Rand `yaml:"-"`

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time `yaml:"-"`
}

// Stage owns the balls, the viewport extents, input state and the spawn
// pop-in tweens. A Stage is not safe for concurrent use; hosts drive it from
// a single goroutine.
type Stage struct {
	balls     []*Ball
	width     float64
	height    float64
	epoch     EpochMode
	padColors bool
	rng       *rand.Rand
	now       func() time.Time
	lastTick  time.Time

	store EntityStore
	debug bool

	tweens []*spawnTween

	// ClearColor fills the screen before balls are drawn. The zero value
	// leaves the screen as the host cleared it.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	injectQueue []injectedPointer
	testRunner  *TestRunner
}

// NewStage creates an empty stage, capturing the viewport extents once.
func NewStage(cfg StageConfig) *Stage {
	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Stage{
		width:         cfg.Width,
		height:        cfg.Height,
		epoch:         cfg.Epoch,
		padColors:     cfg.PadColors,
		rng:           rng,
		now:           now,
		ScreenshotDir: "screenshots",
	}
}

// Viewport returns the extents captured at construction.
func (s *Stage) Viewport() (width, height float64) {
	return s.width, s.height
}

// Balls returns the stage's balls in spawn order. The returned slice MUST NOT
// be mutated; the balls themselves may be.
func (s *Stage) Balls() []*Ball {
	return s.balls
}

// Len returns the number of balls on the stage.
func (s *Stage) Len() int {
	return len(s.balls)
}

// Now returns the stage clock's current time.
func (s *Stage) Now() time.Time {
	return s.now()
}

// GenerateColor returns a random "#"-prefixed hex color.
func (s *Stage) GenerateColor() string {
	c, _ := generateColor(s.rng, s.padColors)
	return c
}

// GenerateSize returns a random ball size in [50, 100).
func (s *Stage) GenerateSize() int {
	return generateSize(s.rng)
}

// CreateBall appends a new ball at (x, y) with a random color and size,
// velocity 5 and the current time as its epoch.
func (s *Stage) CreateBall(x, y float64) *Ball {
	hex, rgb := generateColor(s.rng, s.padColors)
	b := &Ball{
		Color:     hex,
		RGB:       rgb,
		Size:      generateSize(s.rng),
		PositionX: x,
		PositionY: y,
		Velocity:  initialVelocity,
		Time:      s.now(),
	}
	s.balls = append(s.balls, b)
	s.startSpawnTween(b)

	if s.debug {
		debugCheckBallCount(s)
	}

	idx := len(s.balls) - 1
	for _, h := range s.handlers.spawn {
		h.fn(b)
	}
	if s.store != nil {
		s.store.EmitEvent(StageEvent{
			Type:  EventSpawn,
			Index: idx,
			X:     x,
			Y:     y,
			Color: b.Color,
			Size:  b.Size,
		})
	}
	return b
}

// ClickStage forwards a pointer event's coordinates to CreateBall and
// returns the new ball.
func (s *Stage) ClickStage(ev PointerEvent) *Ball {
	return s.CreateBall(ev.X, ev.Y)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// stats are logged to stderr and a warning is printed when the ball count
// crosses debugMaxBallCount.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}
