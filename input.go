package ballpit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ClickContext describes a completed click on the stage.
type ClickContext struct {
	X, Y   float64
	Button MouseButton
	// Ball is the ball spawned by this click.
	Ball *Ball
}

// --- Pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Handler registry ---

type spawnHandler struct {
	id uint32
	fn func(*Ball)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	spawn  []spawnHandler
	click  []clickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered stage-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSpawn:
		h.reg.spawn = removeHandler(h.reg.spawn, h.id, func(x spawnHandler) uint32 { return x.id })
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(x clickHandler) uint32 { return x.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Stage-level event registration ---

// OnSpawn registers a callback fired after every CreateBall.
func (s *Stage) OnSpawn(fn func(*Ball)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.spawn = append(s.handlers.spawn, spawnHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventSpawn}
}

// OnClick registers a callback fired after a click has spawned its ball.
func (s *Stage) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// --- Input processing ---

// Update runs the attached test runner and processes one frame of pointer
// input. Hosts call it once per tick, before flushing the frame queue.
func (s *Stage) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// processInput consumes one injected event if any are queued; otherwise it
// reads the real mouse.
func (s *Stage) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
}

// processMousePointer reads the mouse cursor and buttons from ebiten.
func (s *Stage) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the press/release state machine. A release after a
// press is a click, wherever the pointer moved in between.
func (s *Stage) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		ps.down = false
		s.fireClick(x, y, ps.button)
	default:
		ps.lastX, ps.lastY = x, y
	}
}

// fireClick spawns a ball at the release point and notifies click listeners.
func (s *Stage) fireClick(x, y float64, button MouseButton) {
	b := s.ClickStage(PointerEvent{X: x, Y: y, Button: button})
	ctx := ClickContext{X: x, Y: y, Button: button, Ball: b}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if s.store != nil {
		s.store.EmitEvent(StageEvent{Type: EventClick, X: x, Y: y, Button: button})
	}
}
