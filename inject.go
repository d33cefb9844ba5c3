package ballpit

// injectedPointer is one queued synthetic pointer sample in stage
// coordinates. Each frame consumes at most one sample.
type injectedPointer struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Stage) queuePointer(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, injectedPointer{x: x, y: y, pressed: pressed, button: MouseButtonLeft})
}

// InjectPress queues a left-button press at (x, y) for the next frame.
func (s *Stage) InjectPress(x, y float64) {
	s.queuePointer(x, y, true)
}

// InjectRelease queues a release at (x, y). A release following a press
// spawns a ball at the release point.
func (s *Stage) InjectRelease(x, y float64) {
	s.queuePointer(x, y, false)
}

// InjectClick queues a press and a release at (x, y). The ball appears on
// the second frame.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// processInjectedInput feeds the oldest queued sample to the pointer state
// machine. It reports false when the queue is empty, in which case the real
// mouse is read instead.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	p := s.injectQueue[0]
	s.injectQueue = append(s.injectQueue[:0], s.injectQueue[1:]...)
	s.processPointer(p.x, p.y, p.pressed, p.button)
	return true
}
