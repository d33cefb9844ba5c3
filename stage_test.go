package ballpit

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock is a manually advanced clock for deterministic ticks.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStage(w, h float64) (*Stage, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStage(StageConfig{
		Width:  w,
		Height: h,
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Now:    clk.Now,
	})
	return s, clk
}

type recordingStore struct {
	events []StageEvent
}

func (r *recordingStore) EmitEvent(e StageEvent) {
	r.events = append(r.events, e)
}

func TestNewStage(t *testing.T) {
	s := NewStage(StageConfig{Width: 800, Height: 600})
	w, h := s.Viewport()
	if w != 800 || h != 600 {
		t.Errorf("Viewport() = (%v, %v), want (800, 600)", w, h)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.rng == nil || s.now == nil {
		t.Error("rng and clock should default")
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestCreateBall(t *testing.T) {
	s, clk := newTestStage(800, 600)

	b := s.CreateBall(100, 100)

	if s.Len() != 1 || s.Balls()[0] != b {
		t.Fatalf("expected exactly the new ball on stage, got %d balls", s.Len())
	}
	want := Ball{
		Color:     b.Color,
		RGB:       b.RGB,
		Size:      b.Size,
		PositionX: 100,
		PositionY: 100,
		Velocity:  5,
		Time:      clk.Now(),
		Scale:     0,
	}
	if diff := cmp.Diff(want, *b); diff != "" {
		t.Errorf("ball mismatch (-want +got):\n%s", diff)
	}
	if b.Size < 50 || b.Size > 99 {
		t.Errorf("Size = %d, want [50, 99]", b.Size)
	}
	if !colorPattern.MatchString(b.Color) {
		t.Errorf("Color = %q does not match %s", b.Color, colorPattern)
	}
}

func TestCreateBallAppendsInOrder(t *testing.T) {
	s, _ := newTestStage(800, 600)
	a := s.CreateBall(1, 2)
	b := s.CreateBall(3, 4)
	c := s.CreateBall(5, 6)

	got := s.Balls()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatal("balls should be appended in spawn order")
	}
}

func TestClickStageForwardsCoordinates(t *testing.T) {
	s, _ := newTestStage(800, 600)
	got := s.ClickStage(PointerEvent{X: 12.5, Y: 40, Button: MouseButtonRight})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	b := s.Balls()[0]
	if got != b {
		t.Error("ClickStage should return the spawned ball")
	}
	if b.PositionX != 12.5 || b.PositionY != 40 {
		t.Errorf("position = (%v, %v), want (12.5, 40)", b.PositionX, b.PositionY)
	}
}

func TestOnSpawnAndRemove(t *testing.T) {
	s, _ := newTestStage(800, 600)

	var spawned []*Ball
	h := s.OnSpawn(func(b *Ball) { spawned = append(spawned, b) })

	b := s.CreateBall(10, 10)
	if len(spawned) != 1 || spawned[0] != b {
		t.Fatalf("expected spawn callback with new ball, got %v", spawned)
	}

	h.Remove()
	s.CreateBall(20, 20)
	if len(spawned) != 1 {
		t.Errorf("removed callback fired: %d calls", len(spawned))
	}
	if len(s.handlers.spawn) != 0 {
		t.Errorf("spawn handlers = %d, want 0", len(s.handlers.spawn))
	}
}

func TestCallbackHandleZeroValueRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove() // should not panic
}

func TestEntityStoreReceivesSpawn(t *testing.T) {
	s, _ := newTestStage(800, 600)
	store := &recordingStore{}
	s.SetEntityStore(store)

	b0 := s.CreateBall(1, 2)
	b1 := s.CreateBall(3, 4)

	want := []StageEvent{
		{Type: EventSpawn, Index: 0, X: 1, Y: 2, Color: b0.Color, Size: b0.Size},
		{Type: EventSpawn, Index: 1, X: 3, Y: 4, Color: b1.Color, Size: b1.Size},
	}
	if diff := cmp.Diff(want, store.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestStageSetDebugMode(t *testing.T) {
	s := NewStage(StageConfig{})
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestTwoBallsAreIndependent(t *testing.T) {
	s, clk := newTestStage(800, 600)
	a := s.CreateBall(100, 100)
	b := s.CreateBall(300, 200)
	before := *b

	a.PositionX = -50
	a.Velocity = 1
	if diff := cmp.Diff(before, *b); diff != "" {
		t.Fatalf("mutating one ball changed the other (-want +got):\n%s", diff)
	}

	clk.Advance(time.Second)
	s.checkBounds(a, clk.Now())
	if diff := cmp.Diff(before, *b); diff != "" {
		t.Errorf("updating one ball changed the other (-want +got):\n%s", diff)
	}
}
