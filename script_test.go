package statsview

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "resize", "width": 400, "height": 300},
			{"action": "total", "total": 1000},
			{"action": "values", "values": [250, 250, 250, 250]},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "half"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "resize" || runner.steps[0].Width != 400 || runner.steps[0].Height != 300 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].Action != "values" || len(runner.steps[2].Values) != 4 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "wait" || runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": [{"action": "click"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestScriptRun(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "resize", "width": 400, "height": 400},
		{"action": "total", "total": 1000},
		{"action": "values", "values": [250, 250, 250, 250]},
		{"action": "wait", "frames": 2},
		{"action": "screenshot", "label": "mid"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}

	v := NewView(testStyle(t, AnimationRotation))
	var shots []string
	var shotProgress float64
	runner.OnScreenshot = func(label string) error {
		shots = append(shots, label)
		shotProgress = v.Progress()
		return nil
	}

	if err := runner.Run(v, 0.5); err != nil {
		t.Fatal(err)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if len(shots) != 1 || shots[0] != "mid" {
		t.Errorf("shots = %v", shots)
	}
	// values frame + two wait frames each advance 0.5s of a 2s reveal.
	if shotProgress != 0.75 {
		t.Errorf("progress at screenshot = %v, want 0.75", shotProgress)
	}
	if w, h := v.Size(); w != 400 || h != 400 {
		t.Errorf("size = %vx%v", w, h)
	}
	if v.Spec().Total != 1000 {
		t.Errorf("total = %v", v.Spec().Total)
	}
}

func TestScriptWaitCountsFrames(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	v := NewView(testStyle(t, AnimationRotation))
	frames := 0
	for !runner.Done() {
		runner.Step(v)
		frames++
		if frames > 10 {
			t.Fatal("runner never finished")
		}
	}
	// Three waiting frames plus the one that observes the end.
	if frames != 4 {
		t.Errorf("frames = %d, want 4", frames)
	}
}

func TestScriptScreenshotError(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "a"},
		{"action": "restart"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("disk full")
	runner.OnScreenshot = func(string) error { return boom }

	v := NewView(testStyle(t, AnimationRotation))
	if err := runner.Run(v, 0.1); !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want %v", err, boom)
	}
	if !runner.Done() || runner.Err() == nil {
		t.Error("failed runner should be done with an error")
	}
	if v.Animating() {
		t.Error("restart step should not run after a failure")
	}
}
