package ballpit

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one entry of a test script's "steps" array.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// TestRunner replays a scripted session one step per frame:
//
//	{"steps": [
//	  {"action": "click", "x": 100, "y": 100},
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "after-one-second"},
//	  {"action": "stop"}
//	]}
//
// A click occupies the frames its press and release need; "wait" idles for
// the given number of frames; "stop" skips whatever follows.
type TestRunner struct {
	steps []scriptStep
	next  int
	idle  int
	done  bool
}

// LoadTestScript parses a JSON test script. Scripts must have at least one
// step and only known actions.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "screenshot", "stop":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; Stage.Update steps it before reading input.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the script has finished and its clicks have landed.
func (r *TestRunner) Done() bool {
	return r.done
}

// busy reports whether the runner must sit this frame out.
func (r *TestRunner) busy(s *Stage) bool {
	if len(s.injectQueue) > 0 {
		return true
	}
	if r.idle > 0 {
		r.idle--
		return true
	}
	return false
}

// step runs at most one script step. Called from Stage.Update.
func (r *TestRunner) step(s *Stage) {
	if r.done || r.busy(s) {
		return
	}
	if r.next < len(r.steps) {
		st := r.steps[r.next]
		r.next++
		switch st.Action {
		case "click":
			s.InjectClick(st.X, st.Y)
		case "wait":
			// The frame running the wait step is the first idle frame.
			r.idle = max(st.Frames-1, 0)
		case "screenshot":
			s.Screenshot(st.Label)
		case "stop":
			r.next = len(r.steps)
		}
	}
	r.done = r.next >= len(r.steps) && r.idle == 0 && len(s.injectQueue) == 0
}
