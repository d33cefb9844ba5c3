package ballpit

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	popSampleRate = beep.SampleRate(44100)
	popDuration   = 60 * time.Millisecond
	popGain       = -0.6
	// popBaseFreq is the pitch of the smallest ball. Pitch halves as size
	// doubles.
	popBaseFreq = 880.0
)

// PopSound plays a short sine blip per spawned ball. Register Play with
// Stage.OnSpawn. All methods are no-ops until Init succeeds.
type PopSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPopSound creates an uninitialized sound player.
func NewPopSound() *PopSound {
	return &PopSound{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Callers should treat failure as non-fatal.
func (p *PopSound) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(popSampleRate, popSampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a blip pitched for the ball's size.
func (p *PopSound) Play(b *Ball) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	sine, err := generators.SineTone(popSampleRate, pitchForSize(b.Size))
	if err != nil {
		return
	}
	blip := &effects.Gain{
		Streamer: beep.Take(popSampleRate.N(popDuration), sine),
		Gain:     popGain,
	}
	speaker.Lock()
	p.mixer.Add(blip)
	speaker.Unlock()
}

// Close silences pending blips and releases the audio device.
func (p *PopSound) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// pitchForSize maps a ball size to a tone: 880 Hz at size 50, 440 Hz at 100.
func pitchForSize(size int) float64 {
	if size < 1 {
		size = 1
	}
	return popBaseFreq * minBallSize / float64(size)
}
