package ballpit

import (
	"context"
	"time"
)

// FrameScheduler runs a callback once before the next repaint. Each host
// provides one: the window host flushes it every ebiten tick and the terminal
// host on every ticker fire.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a FrameScheduler whose callbacks run when Flush is called.
// Callbacks requested during a flush run on the following flush.
type FrameQueue struct {
	pending []func()
	running []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Flush runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, q.running[:0]
	n := len(q.running)
	for i, fn := range q.running {
		fn()
		q.running[i] = nil
	}
	q.running = q.running[:0]
	return n
}

// Animator is the repaint loop: every frame it advances the stage and
// re-arms itself with the scheduler until stopped or its context is done.
type Animator struct {
	stage   *Stage
	sched   FrameScheduler
	ctx     context.Context
	gen     uint64
	running bool
	frames  uint64
}

// NewAnimator creates a stopped animator for stage driven by sched.
func NewAnimator(stage *Stage, sched FrameScheduler) *Animator {
	return &Animator{stage: stage, sched: sched}
}

// Start arms the first frame. The loop then runs once per scheduler frame
// until Stop is called or ctx is done. Starting a running animator is a no-op.
func (a *Animator) Start(ctx context.Context) {
	if a.running {
		return
	}
	a.ctx = ctx
	a.gen++
	a.running = true
	a.arm()
}

// Stop halts the loop. A frame already queued with the scheduler becomes a
// no-op when it runs.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
}

// Running reports whether the loop is armed.
func (a *Animator) Running() bool {
	return a.running
}

// Frames returns the number of frames that advanced the stage.
func (a *Animator) Frames() uint64 {
	return a.frames
}

func (a *Animator) arm() {
	gen := a.gen
	a.sched.RequestFrame(func() { a.redraw(gen) })
}

// redraw is the per-frame callback.
func (a *Animator) redraw(gen uint64) {
	if gen != a.gen || !a.running {
		return
	}
	if err := a.ctx.Err(); err != nil {
		a.running = false
		return
	}

	var t0 time.Time
	if a.stage.debug {
		t0 = time.Now()
	}

	a.stage.Tick(a.stage.Now())
	a.frames++

	if a.stage.debug {
		a.stage.debugLog(debugStats{
			frame:     a.frames,
			tickTime:  time.Since(t0),
			ballCount: len(a.stage.balls),
			tweens:    len(a.stage.tweens),
		})
	}

	a.arm()
}
