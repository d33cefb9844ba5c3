package ballpit

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing metrics.
// Only populated when Stage.debug is true.
type debugStats struct {
	frame     uint64
	tickTime  time.Duration
	ballCount int
	tweens    int
}

// debugLog prints per-frame stats to stderr.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[ballpit] frame %d | tick: %v | balls: %d | tweens: %d\n",
		stats.frame, stats.tickTime, stats.ballCount, stats.tweens)
}

// debugMaxBallCount is the ball count above which debug mode warns once.
// Balls are never removed, so every tick gets slower past this point.
const debugMaxBallCount = 1000

func debugCheckBallCount(s *Stage) {
	if len(s.balls) == debugMaxBallCount+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[ballpit] warning: %d balls on stage (threshold %d)\n",
			len(s.balls), debugMaxBallCount)
	}
}
