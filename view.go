package statsview

import (
	"time"

	"github.com/tanema/gween/ease"
)

// EventType identifies a kind of chart event.
type EventType uint8

const (
	EventInvalidate     EventType = iota // the chart needs to be redrawn
	EventAnimationStart                  // new data arrived and the reveal restarted
	EventAnimationEnd                    // the reveal reached progress 1
)

// ChartEvent carries a chart state change to an EventSink.
type ChartEvent struct {
	Type     EventType
	Progress float64
	Segments int
}

// EventSink is the interface for optional event forwarding, for example
// into an ECS world (see the ecs package).
type EventSink interface {
	EmitEvent(event ChartEvent)
}

// View is the chart widget: it owns the current data, the surface geometry
// and the reveal animation, and turns them into a RenderPlan on demand.
//
// View is not safe for concurrent use; drive it from a single game loop.
type View struct {
	style  *Style
	spec   ChartSpec
	geom   Geometry
	width  float64
	height float64

	anim     *Animator
	progress float64
	easing   ease.TweenFunc

	sink  EventSink
	debug bool

	// OnInvalidate, when set, is called every time the chart needs to be
	// redrawn.
	OnInvalidate func()
}

// NewView creates a view with the given style and no data.
func NewView(style *Style) *View {
	return &View{
		style:  style,
		easing: ease.Linear,
		geom:   Resolve(0, 0, style.StrokeWidth()),
	}
}

// Style returns the view's style.
func (v *View) Style() *Style {
	return v.style
}

// SetTotal changes the total the values are measured against. A new total
// restarts the reveal animation; setting the current total again only
// requests a redraw.
func (v *View) SetTotal(total float64) {
	if total == v.spec.Total {
		v.invalidate()
		return
	}
	v.spec.Total = total
	v.Restart()
}

// SetValues replaces the value list and restarts the reveal animation.
func (v *View) SetValues(values []float64) {
	v.spec.Values = append([]float64(nil), values...)
	v.Restart()
}

// SetSpec replaces total and values together and restarts the animation.
func (v *View) SetSpec(spec ChartSpec) {
	v.spec = ChartSpec{Total: spec.Total, Values: append([]float64(nil), spec.Values...)}
	v.Restart()
}

// Spec returns a copy of the current data.
func (v *View) Spec() ChartSpec {
	return ChartSpec{Total: v.spec.Total, Values: append([]float64(nil), v.spec.Values...)}
}

// Restart cancels any running animation and starts a new one from 0.
func (v *View) Restart() {
	if v.anim != nil {
		v.anim.Cancel()
	}
	v.anim = NewAnimator(DefaultDuration, v.easing)
	v.progress = 0
	v.emit(EventAnimationStart)
	v.invalidate()
}

// Resize recomputes the geometry for a new surface size.
func (v *View) Resize(width, height float64) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.geom = Resolve(width, height, v.style.StrokeWidth())
	v.invalidate()
}

// Size returns the current surface size.
func (v *View) Size() (width, height float64) {
	return v.width, v.height
}

// Geometry returns the current ring geometry.
func (v *View) Geometry() Geometry {
	return v.geom
}

// Progress returns the current animation progress.
func (v *View) Progress() float64 {
	return v.progress
}

// Animating reports whether the reveal animation is still running.
func (v *View) Animating() bool {
	return v.anim != nil && v.anim.Active()
}

// Update advances the animation by dt seconds. Each tick that changes
// progress requests a redraw.
func (v *View) Update(dt float32) {
	if v.anim == nil || !v.anim.Active() {
		return
	}
	p, done := v.anim.Update(dt)
	v.progress = p
	v.invalidate()
	if done {
		v.emit(EventAnimationEnd)
	}
}

// Plan builds the draw operations for the current state. It returns nil
// when the surface is too small to hold the ring.
func (v *View) Plan() *RenderPlan {
	if !v.geom.Drawable() {
		return nil
	}
	return Render(v.spec, v.geom, v.style.Animation, v.progress, v.style)
}

// Draw renders the current state onto c.
func (v *View) Draw(c Canvas) {
	var stats debugStats
	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}

	plan := v.Plan()

	if v.debug {
		stats.planTime = time.Since(t0)
		t0 = time.Now()
	}

	plan.Draw(c)

	if v.debug {
		stats.drawTime = time.Since(t0)
		stats.collect(plan)
		stats.progress = v.progress
		v.debugLog(stats)
	}
}

// SetEventSink sets the optional event bridge.
func (v *View) SetEventSink(sink EventSink) {
	v.sink = sink
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (v *View) SetDebugMode(enabled bool) {
	v.debug = enabled
}

func (v *View) invalidate() {
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
	v.emit(EventInvalidate)
}

func (v *View) emit(t EventType) {
	if v.sink == nil {
		return
	}
	v.sink.EmitEvent(ChartEvent{Type: t, Progress: v.progress, Segments: len(v.spec.Values)})
}
