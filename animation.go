package ballpit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const spawnTweenDuration = 0.25 // seconds

// spawnTween pops a freshly spawned ball in from zero scale. It only writes
// Ball.Scale and never touches position or velocity.
type spawnTween struct {
	tween *gween.Tween
	ball  *Ball
	done  bool
}

// update advances the tween by dt seconds and writes the scale.
func (t *spawnTween) update(dt float32) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.ball.Scale = float64(val)
	if finished {
		t.ball.Scale = 1
		t.done = true
	}
}

// startSpawnTween registers a pop-in tween for b.
func (s *Stage) startSpawnTween(b *Ball) {
	b.Scale = 0
	s.tweens = append(s.tweens, &spawnTween{
		tween: gween.New(0, 1, spawnTweenDuration, ease.OutBack),
		ball:  b,
	})
}

// updateTweens steps all active tweens and drops finished ones in place.
func (s *Stage) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		t.update(dt)
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}
