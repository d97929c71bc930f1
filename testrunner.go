package willowui

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string `json:"action"`
	Widget  string `json:"widget,omitempty"`
	Axis    string `json:"axis,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Frames  int    `json:"frames,omitempty"`
	Settled bool   `json:"settled,omitempty"`
	Label   string `json:"label,omitempty"`

	axis Axis
	mode Mode
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected requests and expectations across frames
// for automated testing. Attach to a Runtime via SetTestRunner.
//
// Supported actions:
//
//	{"action": "request", "widget": "ok", "axis": "style", "mode": "pressed"}
//	{"action": "enable" | "disable" | "focus" | "blur", "widget": "ok"}
//	{"action": "wait", "frames": 10}
//	{"action": "screenshot", "label": "hover-mid"}
//	{"action": "expect", "widget": "ok", "axis": "style", "mode": "normal", "settled": true}
//
// One step runs per frame, so a request is delivered and advanced once
// before the step after it runs. An expect step checks the mode the axis
// shows or is heading to, and with "settled" also that the axis is resting.
// Failed expectations are collected, not fatal.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Runtime via SetTestRunner. Axis and mode names are
// resolved here, so a script with a typo fails to load.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, &Error{Op: "parse test script", Kind: KindScript, Err: err}
	}
	if len(script.Steps) == 0 {
		return nil, &Error{Op: "parse test script", Kind: KindScript, Err: fmt.Errorf("no steps")}
	}
	for i := range script.Steps {
		if err := script.Steps[i].resolve(); err != nil {
			return nil, &Error{Op: fmt.Sprintf("parse test script step %d", i), Kind: KindScript, Err: err}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st *testStep) resolve() error {
	switch st.Action {
	case "wait", "screenshot":
		return nil
	case "enable", "disable", "focus", "blur":
		if st.Widget == "" {
			return fmt.Errorf("%s: missing widget", st.Action)
		}
		return nil
	case "request", "expect":
		if st.Widget == "" {
			return fmt.Errorf("%s: missing widget", st.Action)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	a, ok := ParseAxis(st.Axis)
	if !ok {
		return fmt.Errorf("%s: unknown axis %q", st.Action, st.Axis)
	}
	m, ok := ParseMode(a, st.Mode)
	if !ok {
		return fmt.Errorf("%s: unknown %s mode %q", st.Action, a, st.Mode)
	}
	st.axis, st.mode = a, m
	return nil
}

// SetTestRunner attaches a TestRunner to the runtime. The runner's step
// method is called from Runtime.Update before injected requests are
// delivered each frame.
func (rt *Runtime) SetTestRunner(runner *TestRunner) {
	rt.testRunner = runner
}

// TestRunner returns the attached runner, or nil.
func (rt *Runtime) TestRunner() *TestRunner {
	return rt.testRunner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the expectations that did not hold, in script order.
func (r *TestRunner) Failures() []error {
	return r.failures
}

// step advances the test runner by one frame. Called from Runtime.Update.
func (r *TestRunner) step(rt *Runtime) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(rt.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	} else {
		r.exec(rt, st)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(rt.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) exec(rt *Runtime, st testStep) {
	switch st.Action {
	case "request":
		rt.InjectRequest(st.Widget, st.axis, st.mode)
	case "enable", "disable":
		rt.InjectEnable(st.Widget, st.Action == "enable")
	case "focus", "blur":
		rt.InjectFocus(st.Widget, st.Action == "focus")
	case "screenshot":
		rt.Screenshot(st.Label)
	case "expect":
		if err := expect(rt, st); err != nil {
			r.failures = append(r.failures, &Error{
				Op:   fmt.Sprintf("expect step %d", r.cursor-1),
				Kind: KindScript,
				Err:  err,
			})
		}
	}
}

func expect(rt *Runtime, st testStep) error {
	w, ok := rt.Widget(st.Widget)
	if !ok {
		return fmt.Errorf("no widget %q", st.Widget)
	}
	if got := w.Mode(st.axis); got != st.mode {
		return fmt.Errorf("%s %s: got %s, want %s", st.Widget, st.axis,
			ModeName(st.axis, got), ModeName(st.axis, st.mode))
	}
	if st.Settled {
		if t := w.Transitioner(st.axis); t == nil || !t.Settled() {
			return fmt.Errorf("%s %s: still moving (%s)", st.Widget, st.axis, pairString(st.axis, w.Pair(st.axis)))
		}
	}
	return nil
}

func pairString(a Axis, p ModePair) string {
	return ModeName(a, p.From) + "->" + ModeName(a, p.To)
}
