package ballpit

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultTitle = "ballpit"
	defaultTPS   = 60
)

// RunConfig configures the window opened by Run. The window size is the
// stage's viewport.
type RunConfig struct {
	Title   string `yaml:"title"`
	ShowFPS bool   `yaml:"showFPS"`
	// TPS is the number of frames per second. Defaults to 60.
	TPS int `yaml:"tps"`
	// ExitOnScriptDone stops the loop once an attached test runner finishes.
	ExitOnScriptDone bool `yaml:"exitOnScriptDone"`
}

// game adapts a Stage and its Animator to ebiten.Game. Every ebiten tick is
// one repaint: input first, then the queued frame callbacks.
type game struct {
	stage    *Stage
	frames   FrameQueue
	animator *Animator
	fps      *fpsOverlay
	cfg      RunConfig
	w, h     int
}

func newGame(ctx context.Context, stage *Stage, cfg RunConfig) *game {
	if cfg.TPS <= 0 {
		cfg.TPS = defaultTPS
	}
	w, h := stage.Viewport()
	g := &game{stage: stage, cfg: cfg, w: int(w), h: int(h)}
	if g.w <= 0 {
		g.w = 1
	}
	if g.h <= 0 {
		g.h = 1
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.animator = NewAnimator(stage, &g.frames)
	g.animator.Start(ctx)
	return g
}

func (g *game) Update() error {
	g.stage.Update()
	g.frames.Flush()

	// Queued screenshots are only written by Draw, so the game keeps
	// running until one more frame has been drawn.
	pendingShots := len(g.stage.screenshotQueue) > 0
	if g.cfg.ExitOnScriptDone && !pendingShots && g.stage.testRunner != nil && g.stage.testRunner.Done() {
		g.animator.Stop()
	}
	if !g.animator.Running() && !pendingShots {
		return ebiten.Termination
	}
	if g.fps != nil {
		g.fps.update(1 / float64(g.cfg.TPS))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen, g.stage.Len())
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// Run opens a window the size of the stage's viewport and animates the stage
// until the window is closed or ctx is done. Clicking spawns balls.
func Run(ctx context.Context, stage *Stage, cfg RunConfig) error {
	g := newGame(ctx, stage, cfg)

	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetTPS(g.cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
