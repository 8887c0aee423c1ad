package statsview

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a chart script.
type scriptStep struct {
	Action string    `json:"action"`
	Label  string    `json:"label,omitempty"`
	Total  float64   `json:"total,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Width  float64   `json:"width,omitempty"`
	Height float64   `json:"height,omitempty"`
	Frames int       `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a chart script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences data changes, waits and screenshots across frames
// for automated visual checks of the chart animation.
//
//	{"steps": [
//		{"action": "resize", "width": 400, "height": 400},
//		{"action": "total", "total": 1000},
//		{"action": "values", "values": [250, 250, 250, 250]},
//		{"action": "wait", "frames": 60},
//		{"action": "screenshot", "label": "half"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error

	// OnScreenshot is called for every screenshot step. A returned error
	// stops the script.
	OnScreenshot func(label string) error
}

// LoadScript parses a JSON chart script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("statsview: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("statsview: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "values", "total", "resize", "wait", "screenshot", "restart":
		default:
			return nil, fmt.Errorf("statsview: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed or the script failed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the error that stopped the script, if any.
func (r *ScriptRunner) Err() error {
	return r.err
}

// Step advances the script by one frame. Call it once per frame before
// View.Update.
func (r *ScriptRunner) Step(v *View) {
	if r.done {
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

	switch st.Action {
	case "values":
		v.SetValues(st.Values)
	case "total":
		v.SetTotal(st.Total)
	case "resize":
		v.Resize(st.Width, st.Height)
	case "restart":
		v.Restart()
	case "screenshot":
		if r.OnScreenshot != nil {
			if err := r.OnScreenshot(st.Label); err != nil {
				r.err = fmt.Errorf("statsview: screenshot %q: %w", st.Label, err)
				r.done = true
				return
			}
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Run drives v through the whole script, advancing the animation by dt
// after every frame.
func (r *ScriptRunner) Run(v *View, dt float32) error {
	for !r.done {
		r.Step(v)
		v.Update(dt)
	}
	return r.err
}
