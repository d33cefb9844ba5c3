// Package term hosts a ballpit stage in a terminal using tcell. Cells are
// stage units: a click on column 10, row 4 spawns a ball at (10, 4).
package term

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/phanxgames/ballpit"
)

// ErrNotTerminal is returned by Run when stdout is not a terminal.
var ErrNotTerminal = errors.New("term: stdout is not a terminal")

const (
	defaultFPS = 30
	ballRune   = '●'
)

// Options configures the terminal host.
type Options struct {
	// FPS is the repaint rate. Defaults to 30.
	FPS int
	// Screen overrides the tcell screen, mainly for tests. When nil, Run
	// opens the real terminal. Run never finalizes a supplied screen.
	Screen tcell.Screen
}

// host owns the screen and the frame loop. All stage access happens on the
// goroutine running loop.
type host struct {
	stage    *ballpit.Stage
	screen   tcell.Screen
	frames   ballpit.FrameQueue
	animator *ballpit.Animator
	pressed  bool

	// pumpDone is closed when the event pump goroutine has exited.
	pumpDone chan struct{}
}

// OpenScreen initializes the real terminal. It fails with ErrNotTerminal
// when stdout is redirected.
func OpenScreen() (tcell.Screen, error) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return s, nil
}

// NewStageForScreen creates a stage whose viewport is the screen size in
// cells. The screen must already be initialized.
func NewStageForScreen(screen tcell.Screen, cfg ballpit.StageConfig) *ballpit.Stage {
	w, h := screen.Size()
	cfg.Width, cfg.Height = float64(w), float64(h)
	return ballpit.NewStage(cfg)
}

// Run animates stage on the terminal until ctx is done or the user presses
// Esc, Ctrl-C or q. Left-button clicks spawn balls.
func Run(ctx context.Context, stage *ballpit.Stage, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		s, err := OpenScreen()
		if err != nil {
			return err
		}
		defer s.Fini()
		screen = s
	}
	screen.EnableMouse()
	screen.HideCursor()

	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := &host{stage: stage, screen: screen}
	h.animator = ballpit.NewAnimator(stage, &h.frames)
	h.animator.Start(ctx)
	return h.loop(ctx, cancel, time.Second/time.Duration(fps))
}

// pump forwards tcell events until ctx is done or the screen is finalized.
func (h *host) pump(ctx context.Context, events chan<- tcell.Event) {
	defer close(h.pumpDone)
	for {
		ev := h.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop owns the stage until ctx is done. It returns only after the event
// pump has exited, so a caller-supplied screen can be reused or finalized.
func (h *host) loop(ctx context.Context, cancel context.CancelFunc, interval time.Duration) error {
	events := make(chan tcell.Event, 64)
	h.pumpDone = make(chan struct{})
	go h.pump(ctx, events)
	defer func() {
		// Wake PollEvent; the pump sees ctx is done and returns.
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-h.pumpDone
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.animator.Stop()
			return nil
		case ev := <-events:
			if h.handleEvent(ev) {
				cancel()
			}
		case <-ticker.C:
			h.frames.Flush()
			h.draw()
		}
	}
}

// handleEvent applies one tcell event and reports whether to quit.
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			h.pressed = true
		} else if !down && h.pressed {
			h.pressed = false
			h.stage.ClickStage(ballpit.PointerEvent{
				X:      float64(x),
				Y:      float64(y),
				Button: ballpit.MouseButtonLeft,
			})
		}
	case *tcell.EventResize:
		// The viewport was captured at startup; only the terminal buffer
		// needs resyncing.
		h.screen.Sync()
	}
	return false
}

// draw paints every visible ball into its cell.
func (h *host) draw() {
	h.screen.Clear()
	w, hgt := h.screen.Size()
	for _, b := range h.stage.Balls() {
		x, y := int(b.PositionX), int(b.PositionY)
		if b.PositionX < 0 || b.PositionY < 0 || x >= w || y >= hgt {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(b.RGB)))
		h.screen.SetContent(x, y, ballRune, nil, style)
	}
	h.screen.Show()
}
