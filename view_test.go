package statsview

import (
	"testing"
)

// eventLog records every event a view emits.
type eventLog struct {
	events []ChartEvent
}

func (l *eventLog) EmitEvent(e ChartEvent) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestView(t *testing.T, anim AnimationType) (*View, *eventLog) {
	t.Helper()
	v := NewView(testStyle(t, anim))
	log := &eventLog{}
	v.SetEventSink(log)
	return v, log
}

func TestViewNotDrawableUntilResized(t *testing.T) {
	v, _ := newTestView(t, AnimationRotation)
	v.SetSpec(quarterSpec)
	if v.Plan() != nil {
		t.Error("expected nil plan before Resize")
	}
	var rc recordCanvas
	v.Draw(&rc)
	if len(rc.calls) != 0 {
		t.Errorf("Draw on zero-size view made %d calls", len(rc.calls))
	}

	v.Resize(400, 300)
	if v.Plan() == nil {
		t.Fatal("expected plan after Resize")
	}
	if g := v.Geometry(); g.Radius != 145 {
		t.Errorf("Radius = %v, want 145", g.Radius)
	}
	if w, h := v.Size(); w != 400 || h != 300 {
		t.Errorf("Size = %vx%v", w, h)
	}
}

func TestViewLifecycleEvents(t *testing.T) {
	v, log := newTestView(t, AnimationRotation)
	v.Resize(400, 400)
	log.events = nil

	v.SetTotal(1000)
	if !v.Animating() || v.Progress() != 0 {
		t.Errorf("after SetTotal: animating=%v progress=%v", v.Animating(), v.Progress())
	}
	v.Update(0.5)
	v.SetValues([]float64{250, 250, 250, 250})
	if !v.Animating() || v.Progress() != 0 {
		t.Errorf("after SetValues: animating=%v progress=%v", v.Animating(), v.Progress())
	}
	for range 4 {
		v.Update(0.5)
	}
	if v.Progress() != 1 || v.Animating() {
		t.Errorf("after full duration: progress=%v animating=%v", v.Progress(), v.Animating())
	}
	// Further ticks are no-ops.
	v.Update(0.5)

	if n := log.count(EventAnimationStart); n != 2 {
		t.Errorf("start events = %d, want 2", n)
	}
	if n := log.count(EventAnimationEnd); n != 1 {
		t.Errorf("end events = %d, want 1 (the total's animation is replaced)", n)
	}
	if n := log.count(EventInvalidate); n != 7 {
		t.Errorf("invalidate events = %d, want 7", n)
	}
	last := log.events[len(log.events)-1]
	if last.Type != EventAnimationEnd || last.Progress != 1 || last.Segments != 4 {
		t.Errorf("last event = %+v", last)
	}
}

func TestViewOnInvalidate(t *testing.T) {
	v := NewView(testStyle(t, AnimationRotation))
	calls := 0
	v.OnInvalidate = func() { calls++ }

	v.Resize(200, 200)
	v.Resize(200, 200) // unchanged
	v.SetTotal(10)
	if calls != 2 {
		t.Errorf("OnInvalidate calls = %d, want 2", calls)
	}
	if !v.Animating() {
		t.Error("a new total should start the reveal")
	}
	v.Update(1)
	v.SetTotal(10) // unchanged: redraw only
	if calls != 4 {
		t.Errorf("OnInvalidate calls = %d, want 4", calls)
	}
	if v.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5; an unchanged total must not restart", v.Progress())
	}
}

func TestViewSetValuesCopies(t *testing.T) {
	v := NewView(testStyle(t, AnimationRotation))
	values := []float64{1, 2, 3}
	v.SetValues(values)
	values[0] = 99
	if got := v.Spec().Values[0]; got != 1 {
		t.Errorf("view shares caller slice: Values[0] = %v", got)
	}
	spec := v.Spec()
	spec.Values[1] = 99
	if v.Spec().Values[1] != 2 {
		t.Error("Spec() should return a copy")
	}
}

func TestViewRestartMidAnimation(t *testing.T) {
	v, log := newTestView(t, AnimationSequential)
	v.Resize(400, 400)
	v.SetSpec(quarterSpec)
	v.Update(1)
	if p := v.Progress(); p != 0.5 {
		t.Fatalf("progress = %v, want 0.5", p)
	}
	v.SetValues([]float64{500, 500})
	if v.Progress() != 0 {
		t.Errorf("progress after new data = %v, want 0", v.Progress())
	}
	for range 4 {
		v.Update(0.5)
	}
	if n := log.count(EventAnimationEnd); n != 1 {
		t.Errorf("end events = %d, want 1 (old animation must not finish)", n)
	}
	if n := log.count(EventAnimationStart); n != 2 {
		t.Errorf("start events = %d, want 2", n)
	}
}

func TestViewDrawUsesPolicy(t *testing.T) {
	v, _ := newTestView(t, AnimationSequential)
	v.Resize(400, 400)
	v.SetSpec(quarterSpec)
	v.Update(1) // progress 0.5

	var rc recordCanvas
	v.Draw(&rc)
	want := []string{
		"circle 200,200 r195",
		"text 100.00%",
		"arc -90+90",
		"arc 0+90",
		"arc 90+0",
		"point 200,5",
	}
	if len(rc.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rc.calls, want)
	}
	for i := range want {
		if rc.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rc.calls[i], want[i])
		}
	}
}

func TestViewDebugDraw(t *testing.T) {
	v := NewView(testStyle(t, AnimationRotation))
	v.SetDebugMode(true)
	v.Resize(100, 100)
	v.SetSpec(quarterSpec)
	var rc recordCanvas
	v.Draw(&rc) // must not panic with stats enabled
	if len(rc.calls) == 0 {
		t.Error("debug draw produced no calls")
	}
}
